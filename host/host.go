package host

// WindowsNT is the value the agent reports in AGENT.OS on Windows.
const WindowsNT = "Windows_NT"

type Executables struct {
	Windows       string `yaml:"windowsExecutable"`
	CrossPlatform string `yaml:"crossPlatformExecutable"`
}

var DefaultExecutables = Executables{
	Windows:       "powershell.exe",
	CrossPlatform: "pwsh",
}

type Host struct {
	OS          string
	Executables Executables
}

func (h Host) IsWindows() bool {
	return h.OS == WindowsNT
}

// Powershell returns the executable used to launch scripts on this host.
func (h Host) Powershell() string {
	if h.IsWindows() {
		if h.Executables.Windows != "" {
			return h.Executables.Windows
		}
		return DefaultExecutables.Windows
	}

	if h.Executables.CrossPlatform != "" {
		return h.Executables.CrossPlatform
	}
	return DefaultExecutables.CrossPlatform
}
