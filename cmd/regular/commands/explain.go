package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coregx/regular"
	"github.com/coregx/regular/pattern"
)

// explanation is the YAML document printed by the explain command.
type explanation struct {
	Pattern   string   `yaml:"pattern"`
	Canonical string   `yaml:"canonical"`
	Nodes     int      `yaml:"nodes"`
	Depth     int      `yaml:"depth"`
	Prefilter string   `yaml:"prefilter,omitempty"`
	Required  []string `yaml:"required,omitempty"`
	Tree      treeNode `yaml:"tree"`
}

type treeNode struct {
	Kind     string     `yaml:"kind"`
	Pattern  string     `yaml:"pattern"`
	Children []treeNode `yaml:"children,omitempty"`
}

func newExplainCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <pattern>",
		Short: "Print the parse tree and required literals of a pattern as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadSettings(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			re, err := regular.Compile(args[0])
			if err != nil {
				return err
			}
			defer re.Destroy()

			doc := explain(re)
			logger.Debug("explained pattern", "pattern", doc.Pattern, "nodes", doc.Nodes)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode explanation: %w", err)
			}
			return enc.Close()
		},
	}
}

func explain(re *regular.Regex) explanation {
	root := re.Root()

	doc := explanation{
		Pattern:   re.String(),
		Canonical: root.String(),
		Nodes:     pattern.Count(root),
		Depth:     pattern.Depth(root),
		Prefilter: re.Prefilter(),
		Tree:      buildTree(root),
	}

	if seq := re.Required(); seq != nil {
		for i := range seq.Len() {
			doc.Required = append(doc.Required, string(seq.Get(i).Bytes))
		}
	}

	return doc
}

func buildTree(n pattern.Node) treeNode {
	tn := treeNode{Kind: n.Kind().String(), Pattern: n.String()}
	for _, child := range n.Children() {
		tn.Children = append(tn.Children, buildTree(child))
	}
	return tn
}
