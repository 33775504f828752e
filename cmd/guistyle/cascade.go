package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/guistyle/dom/markup"
	"github.com/npillmayer/guistyle/dom/style/cascade"
	"github.com/npillmayer/guistyle/dom/style/stylesheets"
	"github.com/npillmayer/guistyle/dom/styledtree"
	"github.com/npillmayer/guistyle/tree"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type styledNodeOut struct {
	ID       int               `yaml:"id"`
	Node     string            `yaml:"node"`
	Display  string            `yaml:"display"`
	Position string            `yaml:"position"`
	Styles   map[string]string `yaml:"styles,omitempty"`
	Children []styledNodeOut   `yaml:"children,omitempty"`
}

func (a *app) cascadeCmd() *cobra.Command {
	var extra []string
	cmd := &cobra.Command{
		Use:   "cascade [file]",
		Short: "Style a markup document and print the styled tree",
		Long: `Read a markup document, collect its <style> elements and cascade them
over the document body. Each node is printed with the properties which are
set on it; inherited values are not repeated. With --hidpi all pixel values
are scaled.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc, errs, err := markup.ParseString(text)
			if err != nil {
				return err
			}
			reportErrors(cmd, name, errs)
			c := doc.Css
			if len(extra) > 0 {
				sheets, errs := stylesheets.FromStrings(extra...)
				reportErrors(cmd, "--css", errs)
				c.Append(sheets)
			}
			if a.conf.Native {
				c = stylesheets.Native().Append(c)
			}
			root := cascade.NewStyler(c).Style(doc.Dom, nil)
			if a.conf.HiDPI != 1 {
				scale(root, float32(a.conf.HiDPI))
			}
			out := cmd.OutOrStdout()
			if a.conf.Format == formatText {
				fmt.Fprint(out, styledtree.Dump(root))
				return nil
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(styledNode(root))
		},
	}
	cmd.Flags().StringArrayVar(&extra, "css", nil, "additional CSS text, appended after the document's styles")
	return cmd
}

func scale(root *tree.Node[*styledtree.StyNode], factor float32) {
	root.Walk(func(n *tree.Node[*styledtree.StyNode], depth int) bool {
		sn := styledtree.Node(n)
		sn.SetStyles(sn.Styles().ScaleForDPI(factor))
		return true
	})
}

func styledNode(n *tree.Node[*styledtree.StyNode]) styledNodeOut {
	sn := styledtree.Node(n)
	out := styledNodeOut{
		ID:       int(sn.ID()),
		Node:     strings.TrimSpace(sn.NodeData().String()),
		Display:  cascade.Display(sn).String(),
		Position: cascade.PositionOf(sn).String(),
	}
	if props := sn.Styles().Properties(); len(props) > 0 {
		out.Styles = make(map[string]string, len(props))
		for _, p := range props {
			out.Styles[p.Key()] = p.ValueString()
		}
	}
	for _, ch := range n.Children() {
		out.Children = append(out.Children, styledNode(ch))
	}
	return out
}
