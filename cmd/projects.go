package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/staking-sim/staking-sim/sim"
	"github.com/staking-sim/staking-sim/sim/export"
	"github.com/staking-sim/staking-sim/store"
)

var (
	projectsDBPath    string // sqlite database path
	projectConfigPath string // YAML model to save
	projectPresetName string // preset to save
)

// projectsCmd groups the project persistence subcommands.
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage saved tokenomics projects",
}

var projectsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a model as a named project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		model, err := loadModel(projectConfigPath, projectPresetName)
		if err != nil {
			logrus.Fatalf("Loading model: %v", err)
		}
		spec, err := yaml.Marshal(model)
		if err != nil {
			logrus.Fatalf("Encoding model: %v", err)
		}
		s := openStore()
		p, err := s.Save(args[0], string(model.Archetype), spec)
		if err != nil {
			logrus.Fatalf("Saving project: %v", err)
		}
		logrus.Infof("Saved project %q (%s)", p.Name, p.ID)
	},
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		projects, err := s.List()
		if err != nil {
			logrus.Fatalf("Listing projects: %v", err)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Archetype", "Updated")
		for _, p := range projects {
			_ = table.Append([]string{p.Name, p.Archetype, p.UpdatedAt.Format("2006-01-02 15:04")})
		}
		if err := table.Render(); err != nil {
			logrus.Fatalf("Rendering projects: %v", err)
		}
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved project's model YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		p, err := s.Get(args[0])
		if err != nil {
			logrus.Fatalf("Loading project: %v", err)
		}
		fmt.Print(string(p.Spec))
	},
}

var projectsRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run the simulation for a saved project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		p, err := s.Get(args[0])
		if err != nil {
			logrus.Fatalf("Loading project: %v", err)
		}
		model, err := loadProjectModel(p)
		if err != nil {
			logrus.Fatalf("Decoding project: %v", err)
		}
		if err := model.Validate(); err != nil {
			logrus.Fatalf("Validating project model: %v", err)
		}
		outputs := sim.ComputeStakingSeries(model)
		if err := export.RenderSummaryTable(os.Stdout, outputs); err != nil {
			logrus.Fatalf("Rendering results: %v", err)
		}
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		if err := s.Delete(args[0]); err != nil {
			logrus.Fatalf("Deleting project: %v", err)
		}
		logrus.Infof("Deleted project %q", args[0])
	},
}

func openStore() *store.Store {
	s, err := store.Open(projectsDBPath)
	if err != nil {
		logrus.Fatalf("Opening project store: %v", err)
	}
	return s
}

// loadProjectModel decodes a saved project blob back into a model. Kept here
// so the store stays ignorant of the model schema.
func loadProjectModel(p *store.Project) (*sim.StakingModel, error) {
	m, err := sim.ParseStakingModel(p.Spec)
	if err != nil {
		return nil, fmt.Errorf("decoding project %q: %w", p.Name, err)
	}
	return m, nil
}

func init() {
	projectsCmd.PersistentFlags().StringVar(&projectsDBPath, "db", "staking-sim.db", "Project database path")
	projectsSaveCmd.Flags().StringVar(&projectConfigPath, "config", "", "YAML staking model file")
	projectsSaveCmd.Flags().StringVar(&projectPresetName, "preset", "", "Built-in preset name")

	projectsCmd.AddCommand(projectsSaveCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsRunCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}
