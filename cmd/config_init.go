package cmd

import (
	"fmt"

	"github.com/PolarWolf314/sm4tool/internal/configs"
	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
	"github.com/PolarWolf314/sm4tool/internal/files"
	"github.com/PolarWolf314/sm4tool/internal/ui"

	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "replace an existing config file with the defaults")
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.UserSm4Settings.ConfigPath
		Logger.Infof("Initializing config at %s", path)

		if files.Exists(path) && !configInitForce {
			return printFailure(fmt.Errorf("%w: %s", kerrors.ErrConfigExists, path))
		}

		if err := configs.SaveUserConfig(configs.DefaultUserConfig()); err != nil {
			return printFailure(err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Wrote default configuration to " + ui.Path.Sprint(path) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sm4tool config show") + " to see the settings")
		return nil
	},
}
