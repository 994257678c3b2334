package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ChadProbert/celerity/model"
	"github.com/ChadProbert/celerity/navigate"
	"github.com/ChadProbert/celerity/resolver"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <query>",
		Short: "resolve a query into a navigation action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			settings := e.runtime.Settings()
			action, err := resolver.Resolve(args[0], e.manager, settings)
			if err != nil {
				return err
			}
			open, _ := cmd.Flags().GetBool("open")
			if open {
				return navigate.New().Do(action, settings)
			}
			out, err := json.MarshalIndent(action, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().Bool("open", false, "open the resolved targets in the browser")
	return cmd
}

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "print suggestions for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			items, err := e.provider.Suggest(cmd.Context(), args[0], e.manager, e.runtime.Settings())
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Println(item)
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list registered shortcuts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, entry := range e.manager.Entries() {
				target := entry.Command.URL
				if entry.Command.Command != "" {
					target = "-> " + entry.Command.Command
				}
				fmt.Printf("%s\t%s\t%s\n", entry.Key, entry.Command.Name, target)
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <key>",
		Short: "register or replace a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			url, _ := cmd.Flags().GetString("url")
			alias, _ := cmd.Flags().GetString("alias")
			templates, _ := cmd.Flags().GetStringArray("template")
			suggestions, _ := cmd.Flags().GetStringArray("suggestion")

			c := model.Command{
				Name:            name,
				URL:             url,
				Command:         alias,
				SearchTemplates: templates,
				Suggestions:     suggestions,
			}
			replaced := e.manager.Has(args[0])
			if err := e.manager.Set(args[0], c); err != nil {
				return err
			}
			if replaced {
				fmt.Printf("replaced %s\n", args[0])
			} else {
				fmt.Printf("added %s\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().String("name", "", "display name")
	cmd.Flags().String("url", "", "target url")
	cmd.Flags().String("alias", "", "redirect to another key instead of a url")
	cmd.Flags().StringArray("template", nil, "search template, repeatable for multi-target search")
	cmd.Flags().StringArray("suggestion", nil, "canned suggestion, repeatable")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "remove a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			if !e.manager.Has(args[0]) {
				return fmt.Errorf("no shortcut registered for %q", args[0])
			}
			return e.manager.Delete(args[0])
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "restore the default shortcut set",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			return e.manager.Reset()
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "write a settings snapshot to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			data, err := e.manager.ExportSnapshot(e.runtime.Settings())
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "replace shortcuts and settings from a snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			var data []byte
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}
			snap, err := e.manager.ImportSnapshot(data)
			if err != nil {
				return err
			}
			if err := e.runtime.ApplySnapshot(snap); err != nil {
				return err
			}
			fmt.Printf("imported %d shortcuts\n", len(snap.Commands))
			return nil
		},
	}
}
