package cmd_test

import (
	"path/filepath"

	"code.cloudfoundry.org/pwshupdater/cmd"
	"code.cloudfoundry.org/pwshupdater/config"
	"code.cloudfoundry.org/pwshupdater/runner"
	"code.cloudfoundry.org/pwshupdater/task"
	"code.cloudfoundry.org/pwshupdater/updater/mocks"
	"github.com/blang/semver"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var _ = Describe("Root", func() {
	var (
		mockController *gomock.Controller
		mockRunner     *mocks.MockRunner
		vars           map[string]string
		logOut         *gbytes.Buffer
		reporter       *task.Reporter
		taskDir        string
		root           *cobra.Command
	)

	BeforeEach(func() {
		mockController = gomock.NewController(GinkgoT())
		mockRunner = mocks.NewMockRunner(mockController)

		vars = map[string]string{}
		env := &task.Environment{Getenv: func(key string) string { return vars[key] }}

		logOut = gbytes.NewBuffer()
		logger := logrus.New()
		logger.Out = logOut
		logger.Formatter = &task.Formatter{}

		reporter = task.NewReporter(gbytes.NewBuffer())
		taskDir = filepath.Join("agent", "tasks", "pwshupdater")

		root = cmd.NewRoot(
			make(chan struct{}),
			logger,
			env,
			config.Overrides{Dir: taskDir},
			mockRunner,
			reporter,
			semver.MustParse("1.0.0"),
		)
	})

	AfterEach(func() {
		mockController.Finish()
	})

	script := func() string {
		return filepath.Join(taskDir, "PWSHUpdater.ps1")
	}

	Context("with no subcommand", func() {
		It("installs the fixed version with powershell.exe on windows", func() {
			vars["INPUT_FIXEDVERSION"] = "7.2.1"
			vars["AGENT_OS"] = "Windows_NT"
			vars["SYSTEM_DEBUG"] = "true"

			mockRunner.EXPECT().Run(gomock.Any(), runner.Command{
				Executable: "powershell.exe",
				Args:       []string{script(), "-Verbose", "-FixedVersion", "7.2.1"},
			}, gomock.Any()).Return(nil)

			root.SetArgs([]string{})
			Expect(root.Execute()).To(Succeed())
			Expect(logOut).To(gbytes.Say("Script finished"))
		})

		It("installs the release version with pwsh elsewhere", func() {
			vars["INPUT_RELEASEVERSION"] = "7.4"
			vars["AGENT_OS"] = "Linux"

			mockRunner.EXPECT().Run(gomock.Any(), runner.Command{
				Executable: "pwsh",
				Args:       []string{script(), "-ReleaseVersion", "7.4"},
			}, gomock.Any()).Return(nil)

			root.SetArgs([]string{})
			Expect(root.Execute()).To(Succeed())
		})

		It("rejects positional arguments", func() {
			root.SetArgs([]string{"7.4"})
			Expect(root.Execute()).NotTo(Succeed())
		})
	})

	Context("install", func() {
		It("runs the script without version flags when no input is given", func() {
			mockRunner.EXPECT().Run(gomock.Any(), runner.Command{
				Executable: "pwsh",
				Args:       []string{script()},
			}, gomock.Any()).Return(nil)

			root.SetArgs([]string{"install"})
			Expect(root.Execute()).To(Succeed())
		})
	})

	Context("check", func() {
		It("logs the requested version without running anything", func() {
			vars["INPUT_RELEASEVERSION"] = "7.4"
			vars["INPUT_FIXEDVERSION"] = "7.2.1"

			root.SetArgs([]string{"check"})
			Expect(root.Execute()).To(Succeed())
			Expect(logOut).To(gbytes.Say("Trying to install fixed PowerShell version 7.2.1"))
		})

		It("fails when an input is missing", func() {
			vars["INPUT_FIXEDVERSION"] = "7.2.1"

			root.SetArgs([]string{"check"})
			Expect(root.Execute()).To(MatchError("Input required: ReleaseVersion"))
		})
	})

	Context("version", func() {
		It("prints the build version", func() {
			root.SetArgs([]string{"version"})
			Expect(root.Execute()).To(Succeed())
			Expect(logOut).To(gbytes.Say("pwshupdater: 1.0.0"))
		})
	})
})
