// Code generated from the historical terminfo Caps ordinal ordering.
// Derived from original_source/src/capability.rs's define! invocation order
// (meh/rust-terminfo); not hand-maintained.

package terminfo

// booleanNames maps a boolean capability's ordinal slot index to its
// canonical long name.
var booleanNames = [...]string{
	"auto_left_margin",
	"auto_right_margin",
	"no_esc_ctlc",
	"ceol_standout_glitch",
	"eat_newline_glitch",
	"erase_overstrike",
	"generic_type",
	"hard_copy",
	"has_meta_key",
	"has_status_line",
	"insert_null_glitch",
	"memory_above",
	"memory_below",
	"move_insert_mode",
	"move_standout_mode",
	"over_strike",
	"status_line_esc_ok",
	"dest_tabs_magic_smso",
	"tilde_glitch",
	"transparent_underline",
	"xon_xoff",
	"needs_xon_xoff",
	"prtr_silent",
	"hard_cursor",
	"non_rev_rmcup",
	"no_pad_char",
	"non_dest_scroll_region",
	"can_change",
	"back_color_erase",
	"hue_lightness_saturation",
	"col_addr_glitch",
	"cr_cancels_micro_mode",
	"has_print_wheel",
	"row_addr_glitch",
	"semi_auto_right_margin",
	"cpi_changes_res",
	"lpi_changes_res",
	"backspaces_with_bs",
	"crt_no_scrolling",
	"no_correctly_working_cr",
	"gnu_has_meta_key",
	"linefeed_is_newline",
	"has_hardware_tabs",
	"return_does_clr_eol",
}

// numberNames maps a number capability's ordinal slot index to its
// canonical long name.
var numberNames = [...]string{
	"columns",
	"init_tabs",
	"lines",
	"lines_of_memory",
	"magic_cookie_glitch",
	"padding_baud_rate",
	"virtual_terminal",
	"width_status_line",
	"num_labels",
	"label_height",
	"label_width",
	"max_attributes",
	"maximum_windows",
	"max_colors",
	"max_pairs",
	"no_color_video",
	"buffer_capacity",
	"dot_vert_spacing",
	"dot_horz_spacing",
	"max_micro_address",
	"max_micro_jump",
	"micro_col_size",
	"micro_line_size",
	"number_of_pins",
	"output_res_char",
	"output_res_line",
	"output_res_horz_inch",
	"output_res_vert_inch",
	"print_rate",
	"wide_char_size",
	"buttons",
	"bit_image_entwining",
	"bit_image_type",
	"magic_cookie_glitch_ul",
	"carriage_return_delay",
	"new_line_delay",
	"backspace_delay",
	"horizontal_tab_delay",
	"number_of_function_keys",
}

// stringNames maps a string capability's ordinal slot index to its
// canonical long name.
var stringNames = [...]string{
	"back_tab",
	"bell",
	"carriage_return",
	"change_scroll_region",
	"clear_all_tabs",
	"clear_screen",
	"clr_eol",
	"clr_eos",
	"column_address",
	"command_character",
	"cursor_address",
	"cursor_down",
	"cursor_home",
	"cursor_invisible",
	"cursor_left",
	"cursor_mem_address",
	"cursor_normal",
	"cursor_right",
	"cursor_to_ll",
	"cursor_up",
	"cursor_visible",
	"delete_character",
	"delete_line",
	"dis_status_line",
	"down_half_line",
	"enter_alt_charset_mode",
	"enter_blink_mode",
	"enter_bold_mode",
	"enter_ca_mode",
	"enter_delete_mode",
	"enter_dim_mode",
	"enter_insert_mode",
	"enter_secure_mode",
	"enter_protected_mode",
	"enter_reverse_mode",
	"enter_standout_mode",
	"enter_underline_mode",
	"erase_chars",
	"exit_alt_charset_mode",
	"exit_attribute_mode",
	"exit_ca_mode",
	"exit_delete_mode",
	"exit_insert_mode",
	"exit_standout_mode",
	"exit_underline_mode",
	"flash_screen",
	"form_feed",
	"from_status_line",
	"init_1string",
	"init_2string",
	"init_3string",
	"init_file",
	"insert_character",
	"insert_line",
	"insert_padding",
	"key_backspace",
	"key_catab",
	"key_clear",
	"key_ctab",
	"key_dc",
	"key_dl",
	"key_down",
	"key_eic",
	"key_eol",
	"key_eos",
	"key_f0",
	"key_f1",
	"key_f10",
	"key_f2",
	"key_f3",
	"key_f4",
	"key_f5",
	"key_f6",
	"key_f7",
	"key_f8",
	"key_f9",
	"key_home",
	"key_ic",
	"key_il",
	"key_left",
	"key_ll",
	"key_npage",
	"key_ppage",
	"key_right",
	"key_sf",
	"key_sr",
	"key_stab",
	"key_up",
	"keypad_local",
	"keypad_xmit",
	"lab_f0",
	"lab_f1",
	"lab_f10",
	"lab_f2",
	"lab_f3",
	"lab_f4",
	"lab_f5",
	"lab_f6",
	"lab_f7",
	"lab_f8",
	"lab_f9",
	"meta_off",
	"meta_on",
	"newline",
	"pad_char",
	"parm_dch",
	"parm_delete_line",
	"parm_down_cursor",
	"parm_ich",
	"parm_index",
	"parm_insert_line",
	"parm_left_cursor",
	"parm_right_cursor",
	"parm_rindex",
	"parm_up_cursor",
	"pkey_key",
	"pkey_local",
	"pkey_xmit",
	"print_screen",
	"prtr_off",
	"prtr_on",
	"repeat_char",
	"reset_1string",
	"reset_2string",
	"reset_3string",
	"reset_file",
	"restore_cursor",
	"row_address",
	"save_cursor",
	"scroll_forward",
	"scroll_reverse",
	"set_attributes",
	"set_tab",
	"set_window",
	"tab",
	"to_status_line",
	"underline_char",
	"up_half_line",
	"init_prog",
	"key_a1",
	"key_a3",
	"key_b2",
	"key_c1",
	"key_c3",
	"prtr_non",
	"char_padding",
	"acs_chars",
	"plab_norm",
	"key_btab",
	"enter_xon_mode",
	"exit_xon_mode",
	"enter_am_mode",
	"exit_am_mode",
	"xon_character",
	"xoff_character",
	"ena_acs",
	"label_on",
	"label_off",
	"key_beg",
	"key_cancel",
	"key_close",
	"key_command",
	"key_copy",
	"key_create",
	"key_end",
	"key_enter",
	"key_exit",
	"key_find",
	"key_help",
	"key_mark",
	"key_message",
	"key_move",
	"key_next",
	"key_open",
	"key_options",
	"key_previous",
	"key_print",
	"key_redo",
	"key_reference",
	"key_refresh",
	"key_replace",
	"key_restart",
	"key_resume",
	"key_save",
	"key_suspend",
	"key_undo",
	"key_sbeg",
	"key_scancel",
	"key_scommand",
	"key_scopy",
	"key_screate",
	"key_sdc",
	"key_sdl",
	"key_select",
	"key_send",
	"key_seol",
	"key_sexit",
	"key_sfind",
	"key_shelp",
	"key_shome",
	"key_sic",
	"key_sleft",
	"key_smessage",
	"key_smove",
	"key_snext",
	"key_soptions",
	"key_sprevious",
	"key_sprint",
	"key_sredo",
	"key_sreplace",
	"key_sright",
	"key_srsume",
	"key_ssave",
	"key_ssuspend",
	"key_sundo",
	"req_for_input",
	"key_f11",
	"key_f12",
	"key_f13",
	"key_f14",
	"key_f15",
	"key_f16",
	"key_f17",
	"key_f18",
	"key_f19",
	"key_f20",
	"key_f21",
	"key_f22",
	"key_f23",
	"key_f24",
	"key_f25",
	"key_f26",
	"key_f27",
	"key_f28",
	"key_f29",
	"key_f30",
	"key_f31",
	"key_f32",
	"key_f33",
	"key_f34",
	"key_f35",
	"key_f36",
	"key_f37",
	"key_f38",
	"key_f39",
	"key_f40",
	"key_f41",
	"key_f42",
	"key_f43",
	"key_f44",
	"key_f45",
	"key_f46",
	"key_f47",
	"key_f48",
	"key_f49",
	"key_f50",
	"key_f51",
	"key_f52",
	"key_f53",
	"key_f54",
	"key_f55",
	"key_f56",
	"key_f57",
	"key_f58",
	"key_f59",
	"key_f60",
	"key_f61",
	"key_f62",
	"key_f63",
	"clr_bol",
	"clear_margins",
	"set_left_margin",
	"set_right_margin",
	"label_format",
	"set_clock",
	"display_clock",
	"remove_clock",
	"create_window",
	"goto_window",
	"hangup",
	"dial_phone",
	"quick_dial",
	"tone",
	"pulse",
	"flash_hook",
	"fixed_pause",
	"wait_tone",
	"user0",
	"user1",
	"user2",
	"user3",
	"user4",
	"user5",
	"user6",
	"user7",
	"user8",
	"user9",
	"orig_pair",
	"orig_colors",
	"initialize_color",
	"initialize_pair",
	"set_color_pair",
	"set_foreground",
	"set_background",
	"change_char_pitch",
	"change_line_pitch",
	"change_res_horz",
	"change_res_vert",
	"define_char",
	"enter_doublewide_mode",
	"enter_draft_quality",
	"enter_italics_mode",
	"enter_leftward_mode",
	"enter_micro_mode",
	"enter_near_letter_quality",
	"enter_normal_quality",
	"enter_shadow_mode",
	"enter_subscript_mode",
	"enter_superscript_mode",
	"enter_upward_mode",
	"exit_doublewide_mode",
	"exit_italics_mode",
	"exit_leftward_mode",
	"exit_micro_mode",
	"exit_shadow_mode",
	"exit_subscript_mode",
	"exit_superscript_mode",
	"exit_upward_mode",
	"micro_column_address",
	"micro_down",
	"micro_left",
	"micro_right",
	"micro_row_address",
	"micro_up",
	"order_of_pins",
	"parm_down_micro",
	"parm_left_micro",
	"parm_right_micro",
	"parm_up_micro",
	"select_char_set",
	"set_bottom_margin",
	"set_bottom_margin_parm",
	"set_left_margin_parm",
	"set_right_margin_parm",
	"set_top_margin",
	"set_top_margin_parm",
	"start_bit_image",
	"start_char_set_def",
	"stop_bit_image",
	"stop_char_set_def",
	"subscript_characters",
	"superscript_characters",
	"these_cause_cr",
	"zero_motion",
	"char_set_names",
	"key_mouse",
	"mouse_info",
	"req_mouse_pos",
	"get_mouse",
	"set_a_foreground",
	"set_a_background",
	"pkey_plab",
	"device_type",
	"code_set_init",
	"set0_des_seq",
	"set1_des_seq",
	"set2_des_seq",
	"set3_des_seq",
	"set_lr_margin",
	"set_tb_margin",
	"bit_image_repeat",
	"bit_image_newline",
	"bit_image_carriage_return",
	"color_names",
	"define_bit_image_region",
	"end_bit_image_region",
	"set_color_band",
	"set_page_length",
	"display_pc_char",
	"enter_pc_charset_mode",
	"exit_pc_charset_mode",
	"enter_scancode_mode",
	"exit_scancode_mode",
	"pc_term_options",
	"scancode_escape",
	"alt_scancode_esc",
	"enter_horizontal_hl_mode",
	"enter_left_hl_mode",
	"enter_low_hl_mode",
	"enter_right_hl_mode",
	"enter_top_hl_mode",
	"enter_vertical_hl_mode",
	"set_a_attributes",
	"set_pglen_inch",
	"termcap_init2",
	"termcap_reset",
	"linefeed_if_not_lf",
	"backspace_if_not_bs",
	"other_non_function_keys",
	"arrow_key_map",
	"acs_ulcorner",
	"acs_llcorner",
	"acs_urcorner",
	"acs_lrcorner",
	"acs_ltee",
	"acs_rtee",
	"acs_btee",
	"acs_ttee",
	"acs_hline",
	"acs_vline",
	"acs_plus",
	"memory_lock",
	"memory_unlock",
	"box_chars_1",
}

// BooleanName resolves a boolean ordinal slot index to its canonical
// long name.
func BooleanName(index int) (string, bool) {
	if index < 0 || index >= len(booleanNames) {
		return "", false
	}
	return booleanNames[index], true
}

// NumberName resolves a number ordinal slot index to its canonical
// long name.
func NumberName(index int) (string, bool) {
	if index < 0 || index >= len(numberNames) {
		return "", false
	}
	return numberNames[index], true
}

// StringName resolves a string ordinal slot index to its canonical
// long name.
func StringName(index int) (string, bool) {
	if index < 0 || index >= len(stringNames) {
		return "", false
	}
	return stringNames[index], true
}

// aliases maps a short (termcap-style) capability name to its canonical
// long name. Coverage: every standard boolean and number capability, the
// function-key and label families (kf0..kf63, lab_f0..lab_f9), about 220
// commonly used string capabilities, and the extended capabilities from
// screen, tmux, and vim that original_source/src/capability.rs names
// explicitly. A name absent here is looked up as an already-canonical long
// name by Raw, matching database.rs's own ALIASES.get(name).unwrap_or(name)
// fallback.
var aliases = map[string]string{
	"bw": "auto_left_margin",
	"am": "auto_right_margin",
	"xsb": "no_esc_ctlc",
	"xhp": "ceol_standout_glitch",
	"xenl": "eat_newline_glitch",
	"eo": "erase_overstrike",
	"gn": "generic_type",
	"hc": "hard_copy",
	"km": "has_meta_key",
	"hs": "has_status_line",
	"in": "insert_null_glitch",
	"da": "memory_above",
	"db": "memory_below",
	"mir": "move_insert_mode",
	"msgr": "move_standout_mode",
	"os": "over_strike",
	"eslok": "status_line_esc_ok",
	"xt": "dest_tabs_magic_smso",
	"hz": "tilde_glitch",
	"ul": "transparent_underline",
	"xon": "xon_xoff",
	"nxon": "needs_xon_xoff",
	"mc5i": "prtr_silent",
	"chts": "hard_cursor",
	"nrrmc": "non_rev_rmcup",
	"npc": "no_pad_char",
	"ndscr": "non_dest_scroll_region",
	"ccc": "can_change",
	"bce": "back_color_erase",
	"hls": "hue_lightness_saturation",
	"xhpa": "col_addr_glitch",
	"crxm": "cr_cancels_micro_mode",
	"daisy": "has_print_wheel",
	"xvpa": "row_addr_glitch",
	"sam": "semi_auto_right_margin",
	"cpix": "cpi_changes_res",
	"lpix": "lpi_changes_res",
	"OTbs": "backspaces_with_bs",
	"OTns": "crt_no_scrolling",
	"OTnc": "no_correctly_working_cr",
	"OTMT": "gnu_has_meta_key",
	"OTNL": "linefeed_is_newline",
	"OTpt": "has_hardware_tabs",
	"OTxr": "return_does_clr_eol",
	"cols": "columns",
	"it": "init_tabs",
	"lines": "lines",
	"lm": "lines_of_memory",
	"xmc": "magic_cookie_glitch",
	"pb": "padding_baud_rate",
	"vt": "virtual_terminal",
	"wsl": "width_status_line",
	"nlab": "num_labels",
	"lh": "label_height",
	"lw": "label_width",
	"ma": "max_attributes",
	"wnum": "maximum_windows",
	"colors": "max_colors",
	"pairs": "max_pairs",
	"ncv": "no_color_video",
	"bufsz": "buffer_capacity",
	"spinv": "dot_vert_spacing",
	"spinh": "dot_horz_spacing",
	"maddr": "max_micro_address",
	"mjump": "max_micro_jump",
	"mcs": "micro_col_size",
	"mls": "micro_line_size",
	"npins": "number_of_pins",
	"orc": "output_res_char",
	"orl": "output_res_line",
	"orhi": "output_res_horz_inch",
	"orvi": "output_res_vert_inch",
	"cps": "print_rate",
	"widcs": "wide_char_size",
	"btns": "buttons",
	"bitwin": "bit_image_entwining",
	"bitype": "bit_image_type",
	"OTug": "magic_cookie_glitch_ul",
	"OTdC": "carriage_return_delay",
	"OTdN": "new_line_delay",
	"OTdB": "backspace_delay",
	"OTdT": "horizontal_tab_delay",
	"OTkn": "number_of_function_keys",
	"cbt": "back_tab",
	"bel": "bell",
	"cr": "carriage_return",
	"csr": "change_scroll_region",
	"tbc": "clear_all_tabs",
	"clear": "clear_screen",
	"el": "clr_eol",
	"ed": "clr_eos",
	"hpa": "column_address",
	"cmdch": "command_character",
	"cup": "cursor_address",
	"cud1": "cursor_down",
	"home": "cursor_home",
	"civis": "cursor_invisible",
	"cub1": "cursor_left",
	"mrcup": "cursor_mem_address",
	"cnorm": "cursor_normal",
	"cuf1": "cursor_right",
	"ll": "cursor_to_ll",
	"cuu1": "cursor_up",
	"cvvis": "cursor_visible",
	"dch1": "delete_character",
	"dl1": "delete_line",
	"dsl": "dis_status_line",
	"hd": "down_half_line",
	"smacs": "enter_alt_charset_mode",
	"blink": "enter_blink_mode",
	"bold": "enter_bold_mode",
	"smcup": "enter_ca_mode",
	"smdc": "enter_delete_mode",
	"dim": "enter_dim_mode",
	"smir": "enter_insert_mode",
	"invis": "enter_secure_mode",
	"prot": "enter_protected_mode",
	"rev": "enter_reverse_mode",
	"smso": "enter_standout_mode",
	"smul": "enter_underline_mode",
	"ech": "erase_chars",
	"rmacs": "exit_alt_charset_mode",
	"sgr0": "exit_attribute_mode",
	"rmcup": "exit_ca_mode",
	"rmdc": "exit_delete_mode",
	"rmir": "exit_insert_mode",
	"rmso": "exit_standout_mode",
	"rmul": "exit_underline_mode",
	"flash": "flash_screen",
	"ff": "form_feed",
	"fsl": "from_status_line",
	"is1": "init_1string",
	"is2": "init_2string",
	"is3": "init_3string",
	"if": "init_file",
	"ich1": "insert_character",
	"il1": "insert_line",
	"ip": "insert_padding",
	"kbs": "key_backspace",
	"ktbc": "key_catab",
	"kclr": "key_clear",
	"kctab": "key_ctab",
	"kdch1": "key_dc",
	"kdl1": "key_dl",
	"kcud1": "key_down",
	"krmir": "key_eic",
	"kel": "key_eol",
	"ked": "key_eos",
	"khome": "key_home",
	"kich1": "key_ic",
	"kil1": "key_il",
	"kcub1": "key_left",
	"kll": "key_ll",
	"knp": "key_npage",
	"kpp": "key_ppage",
	"kcuf1": "key_right",
	"kind": "key_sf",
	"kri": "key_sr",
	"khts": "key_stab",
	"kcuu1": "key_up",
	"rmkx": "keypad_local",
	"smkx": "keypad_xmit",
	"rmm": "meta_off",
	"smm": "meta_on",
	"nel": "newline",
	"pad": "pad_char",
	"dch": "parm_dch",
	"dl": "parm_delete_line",
	"cud": "parm_down_cursor",
	"ich": "parm_ich",
	"indn": "parm_index",
	"il": "parm_insert_line",
	"cub": "parm_left_cursor",
	"cuf": "parm_right_cursor",
	"rin": "parm_rindex",
	"cuu": "parm_up_cursor",
	"pfkey": "pkey_key",
	"pfloc": "pkey_local",
	"pfx": "pkey_xmit",
	"mc0": "print_screen",
	"mc4": "prtr_off",
	"mc5": "prtr_on",
	"rep": "repeat_char",
	"rs1": "reset_1string",
	"rs2": "reset_2string",
	"rs3": "reset_3string",
	"rf": "reset_file",
	"rc": "restore_cursor",
	"vpa": "row_address",
	"sc": "save_cursor",
	"ind": "scroll_forward",
	"ri": "scroll_reverse",
	"sgr": "set_attributes",
	"hts": "set_tab",
	"wind": "set_window",
	"ht": "tab",
	"tsl": "to_status_line",
	"uc": "underline_char",
	"hu": "up_half_line",
	"iprog": "init_prog",
	"ka1": "key_a1",
	"ka3": "key_a3",
	"kb2": "key_b2",
	"kc1": "key_c1",
	"kc3": "key_c3",
	"mc5p": "prtr_non",
	"rmp": "char_padding",
	"acsc": "acs_chars",
	"pln": "plab_norm",
	"kcbt": "key_btab",
	"smxon": "enter_xon_mode",
	"rmxon": "exit_xon_mode",
	"smam": "enter_am_mode",
	"rmam": "exit_am_mode",
	"xonc": "xon_character",
	"xoffc": "xoff_character",
	"enacs": "ena_acs",
	"smln": "label_on",
	"rmln": "label_off",
	"kbeg": "key_beg",
	"kcan": "key_cancel",
	"kclo": "key_close",
	"kcmd": "key_command",
	"kcpy": "key_copy",
	"kcrt": "key_create",
	"kend": "key_end",
	"kent": "key_enter",
	"kext": "key_exit",
	"kfnd": "key_find",
	"khlp": "key_help",
	"kmrk": "key_mark",
	"kmsg": "key_message",
	"kmov": "key_move",
	"knxt": "key_next",
	"kopn": "key_open",
	"kopt": "key_options",
	"kprv": "key_previous",
	"kprt": "key_print",
	"krdo": "key_redo",
	"kref": "key_reference",
	"krfr": "key_refresh",
	"krpl": "key_replace",
	"krst": "key_restart",
	"kres": "key_resume",
	"ksav": "key_save",
	"kspd": "key_suspend",
	"kund": "key_undo",
	"rfi": "req_for_input",
	"el1": "clr_bol",
	"mgc": "clear_margins",
	"smgl": "set_left_margin",
	"smgr": "set_right_margin",
	"fln": "label_format",
	"sclk": "set_clock",
	"dclk": "display_clock",
	"rmclk": "remove_clock",
	"cwin": "create_window",
	"wingo": "goto_window",
	"hup": "hangup",
	"dial": "dial_phone",
	"qdial": "quick_dial",
	"tone": "tone",
	"pulse": "pulse",
	"hook": "flash_hook",
	"pause": "fixed_pause",
	"wait": "wait_tone",
	"op": "orig_pair",
	"oc": "orig_colors",
	"initc": "initialize_color",
	"initp": "initialize_pair",
	"scp": "set_color_pair",
	"setf": "set_foreground",
	"setb": "set_background",
	"cpi": "change_char_pitch",
	"lpi": "change_line_pitch",
	"chr": "change_res_horz",
	"cvr": "change_res_vert",
	"defc": "define_char",
	"scs": "select_char_set",
	"smgb": "set_bottom_margin",
	"smgt": "set_top_margin",
	"sbim": "start_bit_image",
	"scsd": "start_char_set_def",
	"rbim": "stop_bit_image",
	"rcsd": "stop_char_set_def",
	"zerom": "zero_motion",
	"csnm": "char_set_names",
	"kmous": "key_mouse",
	"minfo": "mouse_info",
	"reqmp": "req_mouse_pos",
	"getm": "get_mouse",
	"setaf": "set_a_foreground",
	"setab": "set_a_background",
	"pfxl": "pkey_plab",
	"devt": "device_type",
	"csin": "code_set_init",
	"smglr": "set_lr_margin",
	"smgtb": "set_tb_margin",
	"colornm": "color_names",
	"slines": "set_page_length",
	"acsc_ulcorner": "acs_ulcorner",
	"kf0":  "key_f0",
	"kf1": "key_f1",
	"kf2": "key_f2",
	"kf3": "key_f3",
	"kf4": "key_f4",
	"kf5": "key_f5",
	"kf6": "key_f6",
	"kf7": "key_f7",
	"kf8": "key_f8",
	"kf9": "key_f9",
	"kf10": "key_f10",
	"kf11": "key_f11",
	"kf12": "key_f12",
	"kf13": "key_f13",
	"kf14": "key_f14",
	"kf15": "key_f15",
	"kf16": "key_f16",
	"kf17": "key_f17",
	"kf18": "key_f18",
	"kf19": "key_f19",
	"kf20": "key_f20",
	"kf21": "key_f21",
	"kf22": "key_f22",
	"kf23": "key_f23",
	"kf24": "key_f24",
	"kf25": "key_f25",
	"kf26": "key_f26",
	"kf27": "key_f27",
	"kf28": "key_f28",
	"kf29": "key_f29",
	"kf30": "key_f30",
	"kf31": "key_f31",
	"kf32": "key_f32",
	"kf33": "key_f33",
	"kf34": "key_f34",
	"kf35": "key_f35",
	"kf36": "key_f36",
	"kf37": "key_f37",
	"kf38": "key_f38",
	"kf39": "key_f39",
	"kf40": "key_f40",
	"kf41": "key_f41",
	"kf42": "key_f42",
	"kf43": "key_f43",
	"kf44": "key_f44",
	"kf45": "key_f45",
	"kf46": "key_f46",
	"kf47": "key_f47",
	"kf48": "key_f48",
	"kf49": "key_f49",
	"kf50": "key_f50",
	"kf51": "key_f51",
	"kf52": "key_f52",
	"kf53": "key_f53",
	"kf54": "key_f54",
	"kf55": "key_f55",
	"kf56": "key_f56",
	"kf57": "key_f57",
	"kf58": "key_f58",
	"kf59": "key_f59",
	"kf60": "key_f60",
	"kf61": "key_f61",
	"kf62": "key_f62",
	"kf63": "key_f63",
	"lf0": "lab_f0",
	"lf1": "lab_f1",
	"lf2": "lab_f2",
	"lf3": "lab_f3",
	"lf4": "lab_f4",
	"lf5": "lab_f5",
	"lf6": "lab_f6",
	"lf7": "lab_f7",
	"lf8": "lab_f8",
	"lf9": "lab_f9",
	"XT": "XT",
	"AX": "AX",
	"XM": "XM",
	"Tc": "Tc",
	"Ms": "Ms",
	"Ss": "Ss",
	"Se": "Se",
	"8f": "8f",
	"8b": "8b",
	"Cr": "Cr",
	"Cs": "Cs",
}

// ResolveAlias resolves a short or already-canonical capability name to
// its canonical long name.
func ResolveAlias(name string) string {
	if long, ok := aliases[name]; ok {
		return long
	}
	return name
}
