// pkg/cli/root.go
package cli

import (
	"github.com/spf13/cobra"
)

const configFlag = "config"

// New собирает корневую команду hot100.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hot100 [команда]",
		Short: "Плейлисты из истории Billboard Hot 100",
		Long: `hot100 сворачивает недельные чарты Billboard Hot 100 в рейтинг песен,
отбирает песни по годам, пиковой позиции и исполнителям и находит их в Spotify.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String(configFlag, "", "путь к файлу конфигурации (по умолчанию $HOT100_CONFIG или config.yaml)")
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newCheckCmd())
	return cmd
}
