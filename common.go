package catlog

const (
	DEFAULT_CATEGORY_VERBOSITY = VRB_LOG
	DEFAULT_CATEGORY_NAME      = "LogGeneral"
	DEFAULT_DELIMITER          = ":"
)

// Verbosity is both the level a call site is tagged with and the threshold a
// category is filtered by. Lower value = more severe; VRB_NONE never emits.
type Verbosity uint8

const (
	VRB_NONE Verbosity = iota
	VRB_FATAL
	VRB_ERROR
	VRB_WARNING
	VRB_DISPLAY
	VRB_LOG
	VRB_VERBOSE
	VRB_VERYVERBOSE
	_VRB_MAX_for_checks_only
)

func normVerbosity(v Verbosity) Verbosity {
	return norm_byte(v, _VRB_MAX_for_checks_only, VRB_NONE)
}

func norm_byte[T ~uint8](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// shouldEmit is the whole filtering contract: a call passes when it is at
// least as severe as the category threshold and is not VRB_NONE. Evaluated
// before any formatting work happens.
func shouldEmit(call, threshold Verbosity) bool {
	return call != VRB_NONE && call <= threshold
}

const (
	// ANSI colored text is a string like \033[38;2;⟨r⟩;⟨g⟩;⟨b⟩mSome_colored_text\033[0m
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

type VerbMap [_VRB_MAX_for_checks_only]string

var VerbShortNames = &VerbMap{
	"---", //VRB_NONE
	"FTL", //VRB_FATAL
	"ERR", //VRB_ERROR
	"WRN", //VRB_WARNING
	"DSP", //VRB_DISPLAY
	"LOG", //VRB_LOG
	"VRB", //VRB_VERBOSE
	"VVB", //VRB_VERYVERBOSE
}

var VerbFullNames = &VerbMap{
	"None",        //VRB_NONE
	"Fatal",       //VRB_FATAL
	"Error",       //VRB_ERROR
	"Warning",     //VRB_WARNING
	"Display",     //VRB_DISPLAY
	"Log",         //VRB_LOG
	"Verbose",     //VRB_VERBOSE
	"VeryVerbose", //VRB_VERYVERBOSE
}

var VerbColorOnBlackMap = &VerbMap{
	"9;90",     //VRB_NONE
	"101;1;33", //VRB_FATAL
	"0;91",     //VRB_ERROR
	"0;33",     //VRB_WARNING
	"0;96",     //VRB_DISPLAY
	"0;97",     //VRB_LOG
	"0;90",     //VRB_VERBOSE
	"2;90",     //VRB_VERYVERBOSE
}

// String returns the full name of the verbosity ("Warning", "VeryVerbose"...).
func (v Verbosity) String() string {
	return VerbFullNames[normVerbosity(v)]
}
