package terminfo

// BoolCapability names a boolean terminal capability. The underlying
// string is the capability's canonical long name, the same string used
// as a CapabilitySet.Entries key.
type BoolCapability string

// NumberCapability names an integer terminal capability.
type NumberCapability string

// StringCapability names a string terminal capability, one that may
// itself contain the parameterized escape language Expand interprets.
type StringCapability string

// Boolean capability constants, one per standard terminfo Caps entry.
const (
	AutoLeftMargin         BoolCapability = "auto_left_margin"
	AutoRightMargin        BoolCapability = "auto_right_margin"
	NoEscCtlc              BoolCapability = "no_esc_ctlc"
	CeolStandoutGlitch     BoolCapability = "ceol_standout_glitch"
	EatNewlineGlitch       BoolCapability = "eat_newline_glitch"
	EraseOverstrike        BoolCapability = "erase_overstrike"
	GenericType            BoolCapability = "generic_type"
	HardCopy               BoolCapability = "hard_copy"
	HasMetaKey             BoolCapability = "has_meta_key"
	HasStatusLine          BoolCapability = "has_status_line"
	InsertNullGlitch       BoolCapability = "insert_null_glitch"
	MemoryAbove            BoolCapability = "memory_above"
	MemoryBelow            BoolCapability = "memory_below"
	MoveInsertMode         BoolCapability = "move_insert_mode"
	MoveStandoutMode       BoolCapability = "move_standout_mode"
	OverStrike             BoolCapability = "over_strike"
	StatusLineEscOk        BoolCapability = "status_line_esc_ok"
	DestTabsMagicSmso      BoolCapability = "dest_tabs_magic_smso"
	TildeGlitch            BoolCapability = "tilde_glitch"
	TransparentUnderline   BoolCapability = "transparent_underline"
	XonXoff                BoolCapability = "xon_xoff"
	NeedsXonXoff           BoolCapability = "needs_xon_xoff"
	PrtrSilent             BoolCapability = "prtr_silent"
	HardCursor             BoolCapability = "hard_cursor"
	NonRevRmcup            BoolCapability = "non_rev_rmcup"
	NoPadChar              BoolCapability = "no_pad_char"
	NonDestScrollRegion    BoolCapability = "non_dest_scroll_region"
	CanChange              BoolCapability = "can_change"
	BackColorErase         BoolCapability = "back_color_erase"
	HueLightnessSaturation BoolCapability = "hue_lightness_saturation"
	ColAddrGlitch          BoolCapability = "col_addr_glitch"
	CrCancelsMicroMode     BoolCapability = "cr_cancels_micro_mode"
	HasPrintWheel          BoolCapability = "has_print_wheel"
	RowAddrGlitch          BoolCapability = "row_addr_glitch"
	SemiAutoRightMargin    BoolCapability = "semi_auto_right_margin"
	CpiChangesRes          BoolCapability = "cpi_changes_res"
	LpiChangesRes          BoolCapability = "lpi_changes_res"
	BackspacesWithBs       BoolCapability = "backspaces_with_bs"
	CrtNoScrolling         BoolCapability = "crt_no_scrolling"
	NoCorrectlyWorkingCr   BoolCapability = "no_correctly_working_cr"
	GnuHasMetaKey          BoolCapability = "gnu_has_meta_key"
	LinefeedIsNewline      BoolCapability = "linefeed_is_newline"
	HasHardwareTabs        BoolCapability = "has_hardware_tabs"
	ReturnDoesClrEol       BoolCapability = "return_does_clr_eol"
)

// Number capability constants, one per standard terminfo Caps entry.
const (
	Columns              NumberCapability = "columns"
	InitTabs             NumberCapability = "init_tabs"
	Lines                NumberCapability = "lines"
	LinesOfMemory        NumberCapability = "lines_of_memory"
	MagicCookieGlitch    NumberCapability = "magic_cookie_glitch"
	PaddingBaudRate      NumberCapability = "padding_baud_rate"
	VirtualTerminal      NumberCapability = "virtual_terminal"
	WidthStatusLine      NumberCapability = "width_status_line"
	NumLabels            NumberCapability = "num_labels"
	LabelHeight          NumberCapability = "label_height"
	LabelWidth           NumberCapability = "label_width"
	MaxAttributes        NumberCapability = "max_attributes"
	MaximumWindows       NumberCapability = "maximum_windows"
	MaxColors            NumberCapability = "max_colors"
	MaxPairs             NumberCapability = "max_pairs"
	NoColorVideo         NumberCapability = "no_color_video"
	BufferCapacity       NumberCapability = "buffer_capacity"
	DotVertSpacing       NumberCapability = "dot_vert_spacing"
	DotHorzSpacing       NumberCapability = "dot_horz_spacing"
	MaxMicroAddress      NumberCapability = "max_micro_address"
	MaxMicroJump         NumberCapability = "max_micro_jump"
	MicroColSize         NumberCapability = "micro_col_size"
	MicroLineSize        NumberCapability = "micro_line_size"
	NumberOfPins         NumberCapability = "number_of_pins"
	OutputResChar        NumberCapability = "output_res_char"
	OutputResLine        NumberCapability = "output_res_line"
	OutputResHorzInch    NumberCapability = "output_res_horz_inch"
	OutputResVertInch    NumberCapability = "output_res_vert_inch"
	PrintRate            NumberCapability = "print_rate"
	WideCharSize         NumberCapability = "wide_char_size"
	Buttons              NumberCapability = "buttons"
	BitImageEntwining    NumberCapability = "bit_image_entwining"
	BitImageType         NumberCapability = "bit_image_type"
	MagicCookieGlitchUl  NumberCapability = "magic_cookie_glitch_ul"
	CarriageReturnDelay  NumberCapability = "carriage_return_delay"
	NewLineDelay         NumberCapability = "new_line_delay"
	BackspaceDelay       NumberCapability = "backspace_delay"
	HorizontalTabDelay   NumberCapability = "horizontal_tab_delay"
	NumberOfFunctionKeys NumberCapability = "number_of_function_keys"
)

// String capability constants, one per standard terminfo Caps entry.
const (
	BackTab                StringCapability = "back_tab"
	Bell                   StringCapability = "bell"
	CarriageReturn         StringCapability = "carriage_return"
	ChangeScrollRegion     StringCapability = "change_scroll_region"
	ClearAllTabs           StringCapability = "clear_all_tabs"
	ClearScreen            StringCapability = "clear_screen"
	ClrEol                 StringCapability = "clr_eol"
	ClrEos                 StringCapability = "clr_eos"
	ColumnAddress          StringCapability = "column_address"
	CommandCharacter       StringCapability = "command_character"
	CursorAddress          StringCapability = "cursor_address"
	CursorDown             StringCapability = "cursor_down"
	CursorHome             StringCapability = "cursor_home"
	CursorInvisible        StringCapability = "cursor_invisible"
	CursorLeft             StringCapability = "cursor_left"
	CursorMemAddress       StringCapability = "cursor_mem_address"
	CursorNormal           StringCapability = "cursor_normal"
	CursorRight            StringCapability = "cursor_right"
	CursorToLl             StringCapability = "cursor_to_ll"
	CursorUp               StringCapability = "cursor_up"
	CursorVisible          StringCapability = "cursor_visible"
	DeleteCharacter        StringCapability = "delete_character"
	DeleteLine             StringCapability = "delete_line"
	DisStatusLine          StringCapability = "dis_status_line"
	DownHalfLine           StringCapability = "down_half_line"
	EnterAltCharsetMode    StringCapability = "enter_alt_charset_mode"
	EnterBlinkMode         StringCapability = "enter_blink_mode"
	EnterBoldMode          StringCapability = "enter_bold_mode"
	EnterCaMode            StringCapability = "enter_ca_mode"
	EnterDeleteMode        StringCapability = "enter_delete_mode"
	EnterDimMode           StringCapability = "enter_dim_mode"
	EnterInsertMode        StringCapability = "enter_insert_mode"
	EnterSecureMode        StringCapability = "enter_secure_mode"
	EnterProtectedMode     StringCapability = "enter_protected_mode"
	EnterReverseMode       StringCapability = "enter_reverse_mode"
	EnterStandoutMode      StringCapability = "enter_standout_mode"
	EnterUnderlineMode     StringCapability = "enter_underline_mode"
	EraseChars             StringCapability = "erase_chars"
	ExitAltCharsetMode     StringCapability = "exit_alt_charset_mode"
	ExitAttributeMode      StringCapability = "exit_attribute_mode"
	ExitCaMode             StringCapability = "exit_ca_mode"
	ExitDeleteMode         StringCapability = "exit_delete_mode"
	ExitInsertMode         StringCapability = "exit_insert_mode"
	ExitStandoutMode       StringCapability = "exit_standout_mode"
	ExitUnderlineMode      StringCapability = "exit_underline_mode"
	FlashScreen            StringCapability = "flash_screen"
	FormFeed               StringCapability = "form_feed"
	FromStatusLine         StringCapability = "from_status_line"
	Init1String            StringCapability = "init_1string"
	Init2String            StringCapability = "init_2string"
	Init3String            StringCapability = "init_3string"
	InitFile               StringCapability = "init_file"
	InsertCharacter        StringCapability = "insert_character"
	InsertLine             StringCapability = "insert_line"
	InsertPadding          StringCapability = "insert_padding"
	KeyBackspace           StringCapability = "key_backspace"
	KeyCatab               StringCapability = "key_catab"
	KeyClear               StringCapability = "key_clear"
	KeyCtab                StringCapability = "key_ctab"
	KeyDc                  StringCapability = "key_dc"
	KeyDl                  StringCapability = "key_dl"
	KeyDown                StringCapability = "key_down"
	KeyEic                 StringCapability = "key_eic"
	KeyEol                 StringCapability = "key_eol"
	KeyEos                 StringCapability = "key_eos"
	KeyF0                  StringCapability = "key_f0"
	KeyF1                  StringCapability = "key_f1"
	KeyF10                 StringCapability = "key_f10"
	KeyF2                  StringCapability = "key_f2"
	KeyF3                  StringCapability = "key_f3"
	KeyF4                  StringCapability = "key_f4"
	KeyF5                  StringCapability = "key_f5"
	KeyF6                  StringCapability = "key_f6"
	KeyF7                  StringCapability = "key_f7"
	KeyF8                  StringCapability = "key_f8"
	KeyF9                  StringCapability = "key_f9"
	KeyHome                StringCapability = "key_home"
	KeyIc                  StringCapability = "key_ic"
	KeyIl                  StringCapability = "key_il"
	KeyLeft                StringCapability = "key_left"
	KeyLl                  StringCapability = "key_ll"
	KeyNpage               StringCapability = "key_npage"
	KeyPpage               StringCapability = "key_ppage"
	KeyRight               StringCapability = "key_right"
	KeySf                  StringCapability = "key_sf"
	KeySr                  StringCapability = "key_sr"
	KeyStab                StringCapability = "key_stab"
	KeyUp                  StringCapability = "key_up"
	KeypadLocal            StringCapability = "keypad_local"
	KeypadXmit             StringCapability = "keypad_xmit"
	LabF0                  StringCapability = "lab_f0"
	LabF1                  StringCapability = "lab_f1"
	LabF10                 StringCapability = "lab_f10"
	LabF2                  StringCapability = "lab_f2"
	LabF3                  StringCapability = "lab_f3"
	LabF4                  StringCapability = "lab_f4"
	LabF5                  StringCapability = "lab_f5"
	LabF6                  StringCapability = "lab_f6"
	LabF7                  StringCapability = "lab_f7"
	LabF8                  StringCapability = "lab_f8"
	LabF9                  StringCapability = "lab_f9"
	MetaOff                StringCapability = "meta_off"
	MetaOn                 StringCapability = "meta_on"
	Newline                StringCapability = "newline"
	PadChar                StringCapability = "pad_char"
	ParmDch                StringCapability = "parm_dch"
	ParmDeleteLine         StringCapability = "parm_delete_line"
	ParmDownCursor         StringCapability = "parm_down_cursor"
	ParmIch                StringCapability = "parm_ich"
	ParmIndex              StringCapability = "parm_index"
	ParmInsertLine         StringCapability = "parm_insert_line"
	ParmLeftCursor         StringCapability = "parm_left_cursor"
	ParmRightCursor        StringCapability = "parm_right_cursor"
	ParmRindex             StringCapability = "parm_rindex"
	ParmUpCursor           StringCapability = "parm_up_cursor"
	PkeyKey                StringCapability = "pkey_key"
	PkeyLocal              StringCapability = "pkey_local"
	PkeyXmit               StringCapability = "pkey_xmit"
	PrintScreen            StringCapability = "print_screen"
	PrtrOff                StringCapability = "prtr_off"
	PrtrOn                 StringCapability = "prtr_on"
	RepeatChar             StringCapability = "repeat_char"
	Reset1String           StringCapability = "reset_1string"
	Reset2String           StringCapability = "reset_2string"
	Reset3String           StringCapability = "reset_3string"
	ResetFile              StringCapability = "reset_file"
	RestoreCursor          StringCapability = "restore_cursor"
	RowAddress             StringCapability = "row_address"
	SaveCursor             StringCapability = "save_cursor"
	ScrollForward          StringCapability = "scroll_forward"
	ScrollReverse          StringCapability = "scroll_reverse"
	SetAttributes          StringCapability = "set_attributes"
	SetTab                 StringCapability = "set_tab"
	SetWindow              StringCapability = "set_window"
	Tab                    StringCapability = "tab"
	ToStatusLine           StringCapability = "to_status_line"
	UnderlineChar          StringCapability = "underline_char"
	UpHalfLine             StringCapability = "up_half_line"
	InitProg               StringCapability = "init_prog"
	KeyA1                  StringCapability = "key_a1"
	KeyA3                  StringCapability = "key_a3"
	KeyB2                  StringCapability = "key_b2"
	KeyC1                  StringCapability = "key_c1"
	KeyC3                  StringCapability = "key_c3"
	PrtrNon                StringCapability = "prtr_non"
	CharPadding            StringCapability = "char_padding"
	AcsChars               StringCapability = "acs_chars"
	PlabNorm               StringCapability = "plab_norm"
	KeyBtab                StringCapability = "key_btab"
	EnterXonMode           StringCapability = "enter_xon_mode"
	ExitXonMode            StringCapability = "exit_xon_mode"
	EnterAmMode            StringCapability = "enter_am_mode"
	ExitAmMode             StringCapability = "exit_am_mode"
	XonCharacter           StringCapability = "xon_character"
	XoffCharacter          StringCapability = "xoff_character"
	EnaAcs                 StringCapability = "ena_acs"
	LabelOn                StringCapability = "label_on"
	LabelOff               StringCapability = "label_off"
	KeyBeg                 StringCapability = "key_beg"
	KeyCancel              StringCapability = "key_cancel"
	KeyClose               StringCapability = "key_close"
	KeyCommand             StringCapability = "key_command"
	KeyCopy                StringCapability = "key_copy"
	KeyCreate              StringCapability = "key_create"
	KeyEnd                 StringCapability = "key_end"
	KeyEnter               StringCapability = "key_enter"
	KeyExit                StringCapability = "key_exit"
	KeyFind                StringCapability = "key_find"
	KeyHelp                StringCapability = "key_help"
	KeyMark                StringCapability = "key_mark"
	KeyMessage             StringCapability = "key_message"
	KeyMove                StringCapability = "key_move"
	KeyNext                StringCapability = "key_next"
	KeyOpen                StringCapability = "key_open"
	KeyOptions             StringCapability = "key_options"
	KeyPrevious            StringCapability = "key_previous"
	KeyPrint               StringCapability = "key_print"
	KeyRedo                StringCapability = "key_redo"
	KeyReference           StringCapability = "key_reference"
	KeyRefresh             StringCapability = "key_refresh"
	KeyReplace             StringCapability = "key_replace"
	KeyRestart             StringCapability = "key_restart"
	KeyResume              StringCapability = "key_resume"
	KeySave                StringCapability = "key_save"
	KeySuspend             StringCapability = "key_suspend"
	KeyUndo                StringCapability = "key_undo"
	KeySbeg                StringCapability = "key_sbeg"
	KeyScancel             StringCapability = "key_scancel"
	KeyScommand            StringCapability = "key_scommand"
	KeyScopy               StringCapability = "key_scopy"
	KeyScreate             StringCapability = "key_screate"
	KeySdc                 StringCapability = "key_sdc"
	KeySdl                 StringCapability = "key_sdl"
	KeySelect              StringCapability = "key_select"
	KeySend                StringCapability = "key_send"
	KeySeol                StringCapability = "key_seol"
	KeySexit               StringCapability = "key_sexit"
	KeySfind               StringCapability = "key_sfind"
	KeyShelp               StringCapability = "key_shelp"
	KeyShome               StringCapability = "key_shome"
	KeySic                 StringCapability = "key_sic"
	KeySleft               StringCapability = "key_sleft"
	KeySmessage            StringCapability = "key_smessage"
	KeySmove               StringCapability = "key_smove"
	KeySnext               StringCapability = "key_snext"
	KeySoptions            StringCapability = "key_soptions"
	KeySprevious           StringCapability = "key_sprevious"
	KeySprint              StringCapability = "key_sprint"
	KeySredo               StringCapability = "key_sredo"
	KeySreplace            StringCapability = "key_sreplace"
	KeySright              StringCapability = "key_sright"
	KeySrsume              StringCapability = "key_srsume"
	KeySsave               StringCapability = "key_ssave"
	KeySsuspend            StringCapability = "key_ssuspend"
	KeySundo               StringCapability = "key_sundo"
	ReqForInput            StringCapability = "req_for_input"
	KeyF11                 StringCapability = "key_f11"
	KeyF12                 StringCapability = "key_f12"
	KeyF13                 StringCapability = "key_f13"
	KeyF14                 StringCapability = "key_f14"
	KeyF15                 StringCapability = "key_f15"
	KeyF16                 StringCapability = "key_f16"
	KeyF17                 StringCapability = "key_f17"
	KeyF18                 StringCapability = "key_f18"
	KeyF19                 StringCapability = "key_f19"
	KeyF20                 StringCapability = "key_f20"
	KeyF21                 StringCapability = "key_f21"
	KeyF22                 StringCapability = "key_f22"
	KeyF23                 StringCapability = "key_f23"
	KeyF24                 StringCapability = "key_f24"
	KeyF25                 StringCapability = "key_f25"
	KeyF26                 StringCapability = "key_f26"
	KeyF27                 StringCapability = "key_f27"
	KeyF28                 StringCapability = "key_f28"
	KeyF29                 StringCapability = "key_f29"
	KeyF30                 StringCapability = "key_f30"
	KeyF31                 StringCapability = "key_f31"
	KeyF32                 StringCapability = "key_f32"
	KeyF33                 StringCapability = "key_f33"
	KeyF34                 StringCapability = "key_f34"
	KeyF35                 StringCapability = "key_f35"
	KeyF36                 StringCapability = "key_f36"
	KeyF37                 StringCapability = "key_f37"
	KeyF38                 StringCapability = "key_f38"
	KeyF39                 StringCapability = "key_f39"
	KeyF40                 StringCapability = "key_f40"
	KeyF41                 StringCapability = "key_f41"
	KeyF42                 StringCapability = "key_f42"
	KeyF43                 StringCapability = "key_f43"
	KeyF44                 StringCapability = "key_f44"
	KeyF45                 StringCapability = "key_f45"
	KeyF46                 StringCapability = "key_f46"
	KeyF47                 StringCapability = "key_f47"
	KeyF48                 StringCapability = "key_f48"
	KeyF49                 StringCapability = "key_f49"
	KeyF50                 StringCapability = "key_f50"
	KeyF51                 StringCapability = "key_f51"
	KeyF52                 StringCapability = "key_f52"
	KeyF53                 StringCapability = "key_f53"
	KeyF54                 StringCapability = "key_f54"
	KeyF55                 StringCapability = "key_f55"
	KeyF56                 StringCapability = "key_f56"
	KeyF57                 StringCapability = "key_f57"
	KeyF58                 StringCapability = "key_f58"
	KeyF59                 StringCapability = "key_f59"
	KeyF60                 StringCapability = "key_f60"
	KeyF61                 StringCapability = "key_f61"
	KeyF62                 StringCapability = "key_f62"
	KeyF63                 StringCapability = "key_f63"
	ClrBol                 StringCapability = "clr_bol"
	ClearMargins           StringCapability = "clear_margins"
	SetLeftMargin          StringCapability = "set_left_margin"
	SetRightMargin         StringCapability = "set_right_margin"
	LabelFormat            StringCapability = "label_format"
	SetClock               StringCapability = "set_clock"
	DisplayClock           StringCapability = "display_clock"
	RemoveClock            StringCapability = "remove_clock"
	CreateWindow           StringCapability = "create_window"
	GotoWindow             StringCapability = "goto_window"
	Hangup                 StringCapability = "hangup"
	DialPhone              StringCapability = "dial_phone"
	QuickDial              StringCapability = "quick_dial"
	Tone                   StringCapability = "tone"
	Pulse                  StringCapability = "pulse"
	FlashHook              StringCapability = "flash_hook"
	FixedPause             StringCapability = "fixed_pause"
	WaitTone               StringCapability = "wait_tone"
	User0                  StringCapability = "user0"
	User1                  StringCapability = "user1"
	User2                  StringCapability = "user2"
	User3                  StringCapability = "user3"
	User4                  StringCapability = "user4"
	User5                  StringCapability = "user5"
	User6                  StringCapability = "user6"
	User7                  StringCapability = "user7"
	User8                  StringCapability = "user8"
	User9                  StringCapability = "user9"
	OrigPair               StringCapability = "orig_pair"
	OrigColors             StringCapability = "orig_colors"
	InitializeColor        StringCapability = "initialize_color"
	InitializePair         StringCapability = "initialize_pair"
	SetColorPair           StringCapability = "set_color_pair"
	SetForeground          StringCapability = "set_foreground"
	SetBackground          StringCapability = "set_background"
	ChangeCharPitch        StringCapability = "change_char_pitch"
	ChangeLinePitch        StringCapability = "change_line_pitch"
	ChangeResHorz          StringCapability = "change_res_horz"
	ChangeResVert          StringCapability = "change_res_vert"
	DefineChar             StringCapability = "define_char"
	EnterDoublewideMode    StringCapability = "enter_doublewide_mode"
	EnterDraftQuality      StringCapability = "enter_draft_quality"
	EnterItalicsMode       StringCapability = "enter_italics_mode"
	EnterLeftwardMode      StringCapability = "enter_leftward_mode"
	EnterMicroMode         StringCapability = "enter_micro_mode"
	EnterNearLetterQuality StringCapability = "enter_near_letter_quality"
	EnterNormalQuality     StringCapability = "enter_normal_quality"
	EnterShadowMode        StringCapability = "enter_shadow_mode"
	EnterSubscriptMode     StringCapability = "enter_subscript_mode"
	EnterSuperscriptMode   StringCapability = "enter_superscript_mode"
	EnterUpwardMode        StringCapability = "enter_upward_mode"
	ExitDoublewideMode     StringCapability = "exit_doublewide_mode"
	ExitItalicsMode        StringCapability = "exit_italics_mode"
	ExitLeftwardMode       StringCapability = "exit_leftward_mode"
	ExitMicroMode          StringCapability = "exit_micro_mode"
	ExitShadowMode         StringCapability = "exit_shadow_mode"
	ExitSubscriptMode      StringCapability = "exit_subscript_mode"
	ExitSuperscriptMode    StringCapability = "exit_superscript_mode"
	ExitUpwardMode         StringCapability = "exit_upward_mode"
	MicroColumnAddress     StringCapability = "micro_column_address"
	MicroDown              StringCapability = "micro_down"
	MicroLeft              StringCapability = "micro_left"
	MicroRight             StringCapability = "micro_right"
	MicroRowAddress        StringCapability = "micro_row_address"
	MicroUp                StringCapability = "micro_up"
	OrderOfPins            StringCapability = "order_of_pins"
	ParmDownMicro          StringCapability = "parm_down_micro"
	ParmLeftMicro          StringCapability = "parm_left_micro"
	ParmRightMicro         StringCapability = "parm_right_micro"
	ParmUpMicro            StringCapability = "parm_up_micro"
	SelectCharSet          StringCapability = "select_char_set"
	SetBottomMargin        StringCapability = "set_bottom_margin"
	SetBottomMarginParm    StringCapability = "set_bottom_margin_parm"
	SetLeftMarginParm      StringCapability = "set_left_margin_parm"
	SetRightMarginParm     StringCapability = "set_right_margin_parm"
	SetTopMargin           StringCapability = "set_top_margin"
	SetTopMarginParm       StringCapability = "set_top_margin_parm"
	StartBitImage          StringCapability = "start_bit_image"
	StartCharSetDef        StringCapability = "start_char_set_def"
	StopBitImage           StringCapability = "stop_bit_image"
	StopCharSetDef         StringCapability = "stop_char_set_def"
	SubscriptCharacters    StringCapability = "subscript_characters"
	SuperscriptCharacters  StringCapability = "superscript_characters"
	TheseCauseCr           StringCapability = "these_cause_cr"
	ZeroMotion             StringCapability = "zero_motion"
	CharSetNames           StringCapability = "char_set_names"
	KeyMouse               StringCapability = "key_mouse"
	MouseInfo              StringCapability = "mouse_info"
	ReqMousePos            StringCapability = "req_mouse_pos"
	GetMouse               StringCapability = "get_mouse"
	SetAForeground         StringCapability = "set_a_foreground"
	SetABackground         StringCapability = "set_a_background"
	PkeyPlab               StringCapability = "pkey_plab"
	DeviceType             StringCapability = "device_type"
	CodeSetInit            StringCapability = "code_set_init"
	Set0DesSeq             StringCapability = "set0_des_seq"
	Set1DesSeq             StringCapability = "set1_des_seq"
	Set2DesSeq             StringCapability = "set2_des_seq"
	Set3DesSeq             StringCapability = "set3_des_seq"
	SetLrMargin            StringCapability = "set_lr_margin"
	SetTbMargin            StringCapability = "set_tb_margin"
	BitImageRepeat         StringCapability = "bit_image_repeat"
	BitImageNewline        StringCapability = "bit_image_newline"
	BitImageCarriageReturn StringCapability = "bit_image_carriage_return"
	ColorNames             StringCapability = "color_names"
	DefineBitImageRegion   StringCapability = "define_bit_image_region"
	EndBitImageRegion      StringCapability = "end_bit_image_region"
	SetColorBand           StringCapability = "set_color_band"
	SetPageLength          StringCapability = "set_page_length"
	DisplayPcChar          StringCapability = "display_pc_char"
	EnterPcCharsetMode     StringCapability = "enter_pc_charset_mode"
	ExitPcCharsetMode      StringCapability = "exit_pc_charset_mode"
	EnterScancodeMode      StringCapability = "enter_scancode_mode"
	ExitScancodeMode       StringCapability = "exit_scancode_mode"
	PcTermOptions          StringCapability = "pc_term_options"
	ScancodeEscape         StringCapability = "scancode_escape"
	AltScancodeEsc         StringCapability = "alt_scancode_esc"
	EnterHorizontalHlMode  StringCapability = "enter_horizontal_hl_mode"
	EnterLeftHlMode        StringCapability = "enter_left_hl_mode"
	EnterLowHlMode         StringCapability = "enter_low_hl_mode"
	EnterRightHlMode       StringCapability = "enter_right_hl_mode"
	EnterTopHlMode         StringCapability = "enter_top_hl_mode"
	EnterVerticalHlMode    StringCapability = "enter_vertical_hl_mode"
	SetAAttributes         StringCapability = "set_a_attributes"
	SetPglenInch           StringCapability = "set_pglen_inch"
	TermcapInit2           StringCapability = "termcap_init2"
	TermcapReset           StringCapability = "termcap_reset"
	LinefeedIfNotLf        StringCapability = "linefeed_if_not_lf"
	BackspaceIfNotBs       StringCapability = "backspace_if_not_bs"
	OtherNonFunctionKeys   StringCapability = "other_non_function_keys"
	ArrowKeyMap            StringCapability = "arrow_key_map"
	AcsUlcorner            StringCapability = "acs_ulcorner"
	AcsLlcorner            StringCapability = "acs_llcorner"
	AcsUrcorner            StringCapability = "acs_urcorner"
	AcsLrcorner            StringCapability = "acs_lrcorner"
	AcsLtee                StringCapability = "acs_ltee"
	AcsRtee                StringCapability = "acs_rtee"
	AcsBtee                StringCapability = "acs_btee"
	AcsTtee                StringCapability = "acs_ttee"
	AcsHline               StringCapability = "acs_hline"
	AcsVline               StringCapability = "acs_vline"
	AcsPlus                StringCapability = "acs_plus"
	MemoryLock             StringCapability = "memory_lock"
	MemoryUnlock           StringCapability = "memory_unlock"
	BoxChars1              StringCapability = "box_chars_1"
)

// Bool reports whether the named boolean capability is present in cs.
// Absence and false both report as false; the distinction is only
// meaningful for numbers and strings, where "absent" and "present with a
// zero value" differ.
func (cs *CapabilitySet) Bool(c BoolCapability) bool {
	v, ok := cs.entries[string(c)]
	return ok && v.Kind == KindBool
}

// Number returns the named number capability's value and whether it was
// present in cs.
func (cs *CapabilitySet) Number(c NumberCapability) (int32, bool) {
	v, ok := cs.entries[string(c)]
	if !ok || v.Kind != KindNumber {
		return 0, false
	}
	return v.Number, true
}

// String returns the named string capability's raw (unexpanded) bytes
// and whether it was present in cs.
func (cs *CapabilitySet) String(c StringCapability) ([]byte, bool) {
	v, ok := cs.entries[string(c)]
	if !ok || v.Kind != KindString {
		return nil, false
	}
	return v.String, true
}

// Raw looks up a capability by either its short (termcap-style) or long
// name and returns its decoded Value, resolving the short form through
// the alias table the same way Database.Raw does. The bool reports
// whether name resolved to any present capability at all.
func (cs *CapabilitySet) Raw(name string) (Value, bool) {
	v, ok := cs.entries[ResolveAlias(name)]
	return v, ok
}

