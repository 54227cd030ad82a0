package main

import (
	"fmt"
	"os"

	"github.com/san-kum/wanderer/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "write or inspect configuration files",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "wanderer.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			cfg := config.Default()
			if err := config.Save(path, &cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the configuration a run would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return printYAML(cfg)
		},
	}
	addMoverFlags(showCmd)

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func showPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range config.ListPresets() {
			fmt.Println(name)
		}
		return nil
	}
	p := config.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}
	return printYAML(*p)
}

func printYAML(cfg config.Config) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
