package main

import (
	"fmt"

	"github.com/npillmayer/guistyle/css"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type keyOut struct {
	Key       string `yaml:"key"`
	Default   string `yaml:"default"`
	Inherited bool   `yaml:"inherited"`
	Relayout  bool   `yaml:"relayout"`
	GPUOnly   bool   `yaml:"gpu-only,omitempty"`
}

func (a *app) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the supported CSS properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var keys []keyOut
			for _, t := range css.PropertyTypes() {
				keys = append(keys, keyOut{
					Key:       t.Key(),
					Default:   css.DefaultFor(t).ValueString(),
					Inherited: t.IsInheritable(),
					Relayout:  t.CanTriggerRelayout(),
					GPUOnly:   t.IsGPUOnly(),
				})
			}
			out := cmd.OutOrStdout()
			if a.conf.Format == formatYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(keys)
			}
			for _, k := range keys {
				flags := ""
				if k.Inherited {
					flags += "i"
				} else {
					flags += "-"
				}
				if k.Relayout {
					flags += "r"
				} else {
					flags += "-"
				}
				fmt.Fprintf(out, "%-30s %s  %s\n", k.Key, flags, k.Default)
			}
			return nil
		},
	}
}
