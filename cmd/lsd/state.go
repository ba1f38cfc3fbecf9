package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/lsd/pkg/adapters/fs"
	"github.com/aretw0/lsd/pkg/core"
)

var stateDiagram bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the state of the service and its store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := graphRoot()
		if err != nil {
			return err
		}
		svc, err := newService(root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if stateDiagram {
			config := introspection.DefaultDiagramConfig()
			config.SecondaryID = "graph"
			config.SecondaryLabel = "Graph Topology"
			fmt.Fprintln(out, introspection.TreeDiagram(buildGraphTree(svc), config))
			return nil
		}

		data, err := json.MarshalIndent(svc.State(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&stateDiagram, "diagram", false, "Print a Mermaid diagram instead of JSON")
}

type graphNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []graphNode
}

// buildGraphTree describes the service and its store for TreeDiagram.
// Status values must match the classes of introspection.DefaultStyles().
func buildGraphTree(svc *core.Service) graphNode {
	state, _ := svc.State().(core.ServiceState)

	storeNode := graphNode{
		Name:     "Store",
		Status:   "running",
		Metadata: map[string]string{"type": state.StoreType},
	}
	if st, ok := state.Store.(fs.StoreState); ok {
		storeNode.Metadata["path"] = st.Path
		storeNode.Metadata["read_only"] = fmt.Sprintf("%t", st.ReadOnly)

		watcherStatus := "suspended"
		if st.WatcherActive {
			watcherStatus = "running"
		}
		storeNode.Children = []graphNode{{
			Name:     "Watcher",
			Status:   watcherStatus,
			Metadata: map[string]string{"type": "goroutine"},
		}}
	}

	return graphNode{
		Name:   "Service",
		Status: "running",
		Metadata: map[string]string{
			"type":                 svc.ComponentType(),
			"remove_empty_bullets": fmt.Sprintf("%t", state.RemoveEmptyBullets),
		},
		Children: []graphNode{storeNode},
	}
}
