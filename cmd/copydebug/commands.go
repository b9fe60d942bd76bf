package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anyproto/any-copydebug/app"
	"github.com/anyproto/any-copydebug/app/debugstat"
	"github.com/anyproto/any-copydebug/config"
	"github.com/anyproto/any-copydebug/copydebug"
)

type cli struct {
	configPath string
	conf       *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:           "copydebug",
		Short:         "show which fields are covered by the copy filters of the demo engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			return c.loadConfig()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to config file, defaults are used when empty")

	rootCmd.AddCommand(c.rulesCmd(), c.classifyCmd(), c.statCmd(), versionCmd())
	return rootCmd
}

func (c *cli) loadConfig() (err error) {
	if c.configPath == "" {
		c.conf = &config.Config{}
		return nil
	}
	if c.conf, err = config.NewFromFile(c.configPath); err != nil {
		return fmt.Errorf("can't open config file: %w", err)
	}
	c.conf.GetLogger().ApplyGlobal()
	return nil
}

func (c *cli) debugger() *copydebug.Debugger {
	d := copydebug.New(demoEngine(), c.conf.GetCopyDebug())
	d.RegisterTypes(demoSamples()...)
	return d
}

func (c *cli) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "print the filters registered in the engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := c.debugger().FilterRules()
			if err != nil {
				return err
			}
			descriptors := make([]copydebug.RuleDescriptor, len(rules))
			for i, r := range rules {
				descriptors[i] = r.Describe()
			}
			return printJSON(cmd.OutOrStdout(), descriptors)
		},
	}
}

func (c *cli) classifyCmd() *cobra.Command {
	var matched, unmatched bool
	cmd := &cobra.Command{
		Use:   "classify [type]",
		Short: "print the filters applying to every field of the type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := c.debugger()
			var (
				res copydebug.Classification
				err error
			)
			switch {
			case matched:
				res, err = d.MatchedProperties(args[0])
			case unmatched:
				res, err = d.UnmatchedProperties(args[0])
			default:
				res, err = d.Classify(args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&matched, "matched", false, "only fields with filters")
	cmd.Flags().BoolVar(&unmatched, "unmatched", false, "only fields without filters")
	cmd.MarkFlagsMutuallyExclusive("matched", "unmatched")
	return cmd
}

func (c *cli) statCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "start the app and print the debug stat of all demo types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := context.Background()
			stat := debugstat.New()
			svc := copydebug.NewService(demoEngine())
			svc.Watch(demoSamples()...)

			a := new(app.App)
			a.Register(c.conf).Register(stat).Register(svc)
			if err = a.Start(ctx); err != nil {
				return fmt.Errorf("can't start app: %w", err)
			}
			defer func() {
				if cerr := a.Close(ctx); cerr != nil && err == nil {
					err = cerr
				}
			}()
			return printJSON(cmd.OutOrStdout(), stat.GetStat())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the build description",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.VersionDescription())
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
