package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"carril-bici/internal/config"
	apperrors "carril-bici/internal/pkg/errors"
	"carril-bici/internal/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Explora los tramos de forma interactiva",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model := ui.NewBrowseModel(registry, config.GetConfig().Display.Units)
		p := tea.NewProgram(model,
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if _, err := p.Run(); err != nil {
			return apperrors.WrapError(apperrors.ErrCodeRenderFailed, "运行浏览界面失败", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
