package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catcher-arcade/internal/profile"
)

var flagProfileClear bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the remembered player name",
	Long: `Show the remembered player profile. With --name the name is
changed; with --clear the profile is forgotten and the next game asks
for a name again.

Examples:
  arcade profile
  arcade profile --name ann
  arcade profile --clear`,
	Args: cobra.NoArgs,
	Run:  runProfile,
}

func init() {
	profileCmd.Flags().BoolVar(&flagProfileClear, "clear", false, "Forget the remembered player")
}

func runProfile(_ *cobra.Command, _ []string) {
	pm, err := profile.Open(profile.AppName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagProfileClear:
		if err := pm.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Profile cleared.")
		return
	case flagName != "":
		name, ok := profile.NormalizeName(flagName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %q is not a usable name\n", flagName)
			os.Exit(1)
		}
		if err := pm.SetName(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
			os.Exit(1)
		}
	}

	p := pm.Profile()
	if p.Name == "" {
		fmt.Println("No player name set. Use 'arcade profile --name <name>'.")
		return
	}
	fmt.Printf("Player:       %s\n", p.Name)
	fmt.Printf("Games played: %d\n", p.GamesPlayed)
	fmt.Printf("Best score:   %d\n", p.BestScore)
}
