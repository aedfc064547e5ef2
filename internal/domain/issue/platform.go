package issue

var platformDisplayNames = map[string]string{
	"lnx86":     "Linux",
	"lr":        "LR",
	"rhel7.6":   "RHEL7.6",
	"centos7.4": "CENTOS7.4",
	"sles12sp3": "SLES12SP3",
	"lop":       "LOP",
}

// PlatformDisplayName converts a platform code to its display name.
// Unknown codes are returned unchanged.
func PlatformDisplayName(code string) string {
	if display, ok := platformDisplayNames[code]; ok {
		return display
	}
	return code
}

// buildOptions are the build categories testers may report against.
var buildOptions = []string{"Weekly", "Daily", "Daily Plus"}

// BuildOptions returns the available build options.
func BuildOptions() []string {
	options := make([]string, len(buildOptions))
	copy(options, buildOptions)
	return options
}

// targetOptions maps a release code to its known build targets.
var targetOptions = map[string][]string{
	"251": {
		"25.11-d065_1_Jun23",
		"25.11-d062_1_Jun_19",
		"25.11-d057_1_Jun_12",
		"25.11-d049_1_Jun_05",
	},
	"261": {
		"26.10-d075_1_May_08",
	},
	"231": {
		"23.13-d014_1_Oct_23",
		"23.13-d012_1_Oct_15",
	},
}

// TargetOptions returns the known build targets for a release code.
// Unknown releases have no targets.
func TargetOptions(release string) []string {
	targets, ok := targetOptions[release]
	if !ok {
		return []string{}
	}
	options := make([]string, len(targets))
	copy(options, targets)
	return options
}
