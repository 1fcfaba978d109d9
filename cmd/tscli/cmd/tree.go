package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/set"
)

// treeCmd 表示tree命令，用于显示集合的内部树结构
var treeCmd = &cobra.Command{
	Use:   "tree [set-name]",
	Short: "Display the balanced tree behind a set",
	Long: `Display the internal tree of a set. Each node shows its item and height;
L and R mark the left and right child.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		root, err := GetSetService().Snapshot(name)
		if err != nil {
			return fmt.Errorf("failed to get tree: %w", err)
		}

		if root == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Set '%s' is empty.\n", name)
			return nil
		}

		rendered, err := pterm.DefaultTree.WithRoot(pterm.TreeNode{
			Text:     name,
			Children: []pterm.TreeNode{toPtermNode("", root)},
		}).Srender()
		if err != nil {
			return fmt.Errorf("failed to render tree: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// toPtermNode 将树快照转换为pterm的树节点
func toPtermNode(side string, n *set.TreeNode[string]) pterm.TreeNode {
	node := pterm.TreeNode{Text: fmt.Sprintf("%s%s (h=%d)", side, n.Key, n.Height)}
	if n.Left != nil {
		node.Children = append(node.Children, toPtermNode("L: ", n.Left))
	}
	if n.Right != nil {
		node.Children = append(node.Children, toPtermNode("R: ", n.Right))
	}
	return node
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
