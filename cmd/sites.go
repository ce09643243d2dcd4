package cmd

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/datastore"
	"github.com/spf13/cobra"
)

var (
	sitesSearchLimit int
	sitesRegDesc     string
	sitesRefresh     bool
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Inspect and manage the site registry",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered sites",
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := loadMetadata()
		if err != nil {
			return err
		}
		if len(meta.Sites) == 0 {
			fmt.Println("(no sites)")
			return nil
		}
		for _, s := range meta.Sites {
			fmt.Printf("- %s\n", s.Description)
		}
		return nil
	},
}

var sitesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search sites by free-text description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := loadMetadata()
		if err != nil {
			return err
		}
		hits := meta.SearchSites(strings.Join(args, " "), sitesSearchLimit)
		if len(hits) == 0 {
			fmt.Println("(no matches)")
			return nil
		}
		for _, s := range hits {
			fmt.Printf("- %s\n", s.Description)
		}
		return nil
	},
}

var sitesRegisterCmd = &cobra.Command{
	Use:   "register [site-id]",
	Short: "Register a new site by hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := loadMetadata()
		if err != nil {
			return err
		}
		if meta.KnownSite(args[0]) {
			return fmt.Errorf("site %s is already registered", args[0])
		}
		if err := meta.RegisterSite(args[0], sitesRegDesc); err != nil {
			return err
		}
		fmt.Printf("Registered site %s\n", args[0])
		return nil
	},
}

func loadMetadata() (*datastore.Metadata, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return store.InitMetadata(cfg.MetadataDir, sitesRefresh)
}

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesListCmd, sitesSearchCmd, sitesRegisterCmd)
	sitesCmd.PersistentFlags().BoolVar(&sitesRefresh, "refresh", false, "rebuild the metadata cache from the data file")
	sitesSearchCmd.Flags().IntVarP(&sitesSearchLimit, "limit", "n", 5, "maximum results")
	sitesRegisterCmd.Flags().StringVarP(&sitesRegDesc, "description", "d", "", "site description")
}
