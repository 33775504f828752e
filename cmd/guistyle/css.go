package main

import (
	"fmt"

	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/style/stylesheets"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ruleOut struct {
	Selector     string   `yaml:"selector"`
	Declarations []string `yaml:"declarations"`
}

func (a *app) cssCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "css [file]",
		Short: "Parse a stylesheet and print it in normalized form",
		Long: `Parse a stylesheet and print it in normalized form. Shorthands are
expanded to their longhands and every declaration is printed on its own line.
Errors are reported on stderr; the offending rules or declarations are dropped.
The native stylesheet is never included.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			c, errs := stylesheets.FromString(text)
			reportErrors(cmd, name, errs)
			return a.writeCss(cmd, c)
		},
	}
}

func (a *app) writeCss(cmd *cobra.Command, c *cssom.Css) error {
	out := cmd.OutOrStdout()
	if a.conf.Format == formatText {
		for _, sheet := range c.Stylesheets {
			fmt.Fprint(out, sheet.String())
		}
		return nil
	}
	var rules []ruleOut
	for _, sheet := range c.Stylesheets {
		for _, rb := range sheet.Rules {
			r := ruleOut{Selector: rb.Path.String()}
			for _, d := range rb.Declarations {
				r.Declarations = append(r.Declarations, d.String())
			}
			rules = append(rules, r)
		}
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(rules)
}
