package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yousseftechdev/postmaker/internal/catalog"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage request templates (descriptor plus saved dispatch flags)",
}

var templateSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a template with its dispatch flags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		d, err := descriptorFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		tpl := catalog.Template{Descriptor: d, Flags: changedFlags(cmd.Flags())}
		if err := a.catalog.SaveTemplate(args[0], tpl); err != nil {
			return err
		}
		fmt.Printf("Template %q saved.\n", args[0])
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		names, err := a.catalog.TemplateNames()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No templates saved.")
			return nil
		}
		templates, err := a.catalog.Templates()
		if err != nil {
			return err
		}
		for _, name := range names {
			tpl := templates[name]
			fmt.Printf("%s: %s %s\n", name, tpl.Normalized().Method, tpl.URL)
		}
		return nil
	},
}

var templateUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Send a saved template with its saved flags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		tpl, err := a.catalog.Template(args[0])
		if err != nil {
			return err
		}
		opts, err := tpl.Options()
		if err != nil {
			return err
		}
		opts.DebugMode = a.debug
		exec, closeStore, err := a.executor()
		if err != nil {
			return err
		}
		defer closeStore()
		return exec.Execute(context.Background(), tpl.Descriptor, opts)
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.catalog.DeleteTemplate(args[0]); err != nil {
			return err
		}
		fmt.Printf("Template %q deleted.\n", args[0])
		return nil
	},
}

// changedFlags collects explicitly set dispatch flags into the template's
// flag map, keyed by the option names request.Options decodes.
func changedFlags(fs *pflag.FlagSet) map[string]interface{} {
	keyFor := map[string]string{
		"output":     "output",
		"only":       "only",
		"assert":     "assertion",
		"preview":    "preview",
		"fill-vars":  "fill_vars",
		"save-vars":  "save_vars",
		"no-history": "no_history",
		"dry-run":    "dry_run",
		"mock":       "mock",
		"repeat":     "repeat",
		"interval":   "interval",
		"verbose":    "verbose",
		"capture":    "captures",
	}
	out := map[string]interface{}{}
	fs.Visit(func(f *pflag.Flag) {
		key, ok := keyFor[f.Name]
		if !ok {
			return
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := fs.GetBool(f.Name)
			out[key] = v
		case "int":
			v, _ := fs.GetInt(f.Name)
			out[key] = v
		case "stringToString":
			v, _ := fs.GetStringToString(f.Name)
			out[key] = v
		default:
			v, _ := fs.GetString(f.Name)
			out[key] = v
		}
	})
	if len(out) == 0 {
		return nil
	}
	return out
}

func init() {
	addDescriptorFlags(templateSaveCmd.Flags())
	addDispatchFlags(templateSaveCmd.Flags())
	_ = templateSaveCmd.MarkFlagRequired("url")

	templateCmd.AddCommand(templateSaveCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateUseCmd)
	templateCmd.AddCommand(templateDeleteCmd)
}
