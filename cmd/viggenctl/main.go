package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/viggen-group/viggenweb/internal/client"
	"github.com/viggen-group/viggenweb/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "viggenctl",
	Short: "viggenctl - Viggen Holdings website tooling",
	Long:  `viggenctl talks to the Viggen Holdings website backend from the command line.`,
}

var (
	serverURL    string
	draftName    string
	draftEmail   string
	draftCompany string
	draftTopic   string
	draftMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact form submission",
	Long: `Send a contact form submission to the website backend.

Example:
  viggenctl contact --name "Jo" --email jo@x.com --message "Hello"`,
	Run: func(cmd *cobra.Command, args []string) {
		draft := client.Draft{
			Name:         draftName,
			Email:        draftEmail,
			Company:      draftCompany,
			InterestedIn: draftTopic,
			Message:      draftMessage,
		}

		if msg := client.Validate(draft); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
			os.Exit(1)
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending message..."
		s.Start()

		c := client.New(serverURL, 30*time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		result, err := c.Submit(ctx, draft)

		s.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !result.OK {
			fmt.Fprintln(os.Stderr, result.Message)
			os.Exit(1)
		}
		fmt.Println(result.Message)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetBuildInfo()
		fmt.Printf("viggenctl %s\n", info.Version)
		fmt.Printf("  Build time: %s\n", info.BuildTime)
		fmt.Printf("  Git commit: %s\n", info.GitCommit)
		fmt.Printf("  Go version: %s\n", info.GoVersion)
		fmt.Printf("  Platform:   %s\n", info.Platform)
	},
}

func init() {
	contactCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Backend base URL")
	contactCmd.Flags().StringVar(&draftName, "name", "", "Your name")
	contactCmd.Flags().StringVar(&draftEmail, "email", "", "Your email address")
	contactCmd.Flags().StringVar(&draftCompany, "company", "", "Company (optional)")
	contactCmd.Flags().StringVar(&draftTopic, "interested-in", "", "Topic: partnership, investor, services, career, other")
	contactCmd.Flags().StringVar(&draftMessage, "message", "", "Message body")

	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
