package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stylegen-io/stylegen/internal/version"
)

func GetVersionString() string {
	return fmt.Sprintf("%s+%s", version.Version, version.Revision)
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the stylegen CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
