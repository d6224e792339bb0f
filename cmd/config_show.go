package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/sm4tool/internal/configs"
	"github.com/PolarWolf314/sm4tool/internal/files"
	"github.com/PolarWolf314/sm4tool/internal/ui"

	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return printFailure(err)
		}

		settings := configs.UserSm4Settings
		source := "defaults, no config file"
		if files.Exists(settings.ConfigPath) {
			source = settings.ConfigPath
		}

		workers := fmt.Sprintf("%d", config.Cipher.Workers)
		if config.Cipher.Workers == 0 {
			workers += " " + ui.Muted.Sprintf("one per CPU, %d", config.EffectiveWorkers())
		}

		var b strings.Builder
		b.WriteString("Configuration " + ui.Muted.Sprint(source) + "\n")
		b.WriteString("  cipher.suffix          " + ui.Highlight.Sprint(config.Cipher.Suffix) + "\n")
		b.WriteString("  cipher.workers         " + workers + "\n")
		b.WriteString(fmt.Sprintf("  cipher.strict_padding  %t\n", config.Cipher.StrictPadding))
		b.WriteString(fmt.Sprintf("  output.force           %t\n", config.Output.Force))
		b.WriteString(fmt.Sprintf("  audit.enabled          %t\n", config.Audit.Enabled))
		b.WriteString("  audit log              " + ui.Path.Sprint(settings.AuditLogPath))
		fmt.Println(b.String())
		return nil
	},
}
