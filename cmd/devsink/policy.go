package main

import (
	"encoding/json"
	"fmt"

	"github.com/seralba/devsink/internal/config"
	"github.com/seralba/devsink/internal/policy"
)

// runPolicy dispatches the policy subcommands against the configured store
// backend.
func runPolicy(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("policy: usage: policy <enable|disable|release|status|get|set|list> [key] [blob]")
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	conf := policy.NewConfigurator(store)

	op := args[0]
	key := ""
	if len(args) > 1 {
		key = args[1]
	}

	switch op {
	case "enable":
		if key == "" {
			return fmt.Errorf("policy enable: missing key")
		}
		return conf.Enable(key)
	case "disable":
		if key == "" {
			return fmt.Errorf("policy disable: missing key")
		}
		return conf.Disable(key)
	case "release":
		if key == "" {
			return fmt.Errorf("policy release: missing key")
		}
		return conf.Release(key)
	case "status":
		if key == "" {
			return fmt.Errorf("policy status: missing key")
		}
		f, managed, err := conf.Status(key)
		if err != nil {
			return err
		}
		fmt.Printf("%s: enabled=%v default=%d allowEdit=%v managed=%v\n",
			key, f.Enabled, f.Default, f.AllowEdit, managed)
		return nil
	case "get":
		if key == "" {
			return fmt.Errorf("policy get: missing key")
		}
		blob, err := store.Read(key)
		if err != nil {
			return err
		}
		fmt.Println(string(blob))
		return nil
	case "set":
		if key == "" || len(args) < 3 {
			return fmt.Errorf("policy set: usage: policy set <key> <json-blob>")
		}
		var f policy.Feature
		if err := json.Unmarshal([]byte(args[2]), &f); err != nil {
			return &policy.ValidationError{Key: key, Err: err}
		}
		return policy.WriteFeature(store, key, f)
	case "list":
		set, err := policy.ReadSet(store)
		if err != nil {
			return err
		}
		fmt.Printf("managed=%v\n", set.Managed)
		for name, f := range set.Features {
			fmt.Printf("%s: enabled=%v default=%d allowEdit=%v\n", name, f.Enabled, f.Default, f.AllowEdit)
		}
		return nil
	}
	return fmt.Errorf("policy: unknown subcommand %q", op)
}

// openStore selects the policy store backend from configuration. The
// registry backend only exists on Windows; elsewhere it reports
// ErrNotSupported.
func openStore(cfg *config.Config) (policy.Store, error) {
	switch cfg.Policy.Backend {
	case "registry":
		return policy.NewRegistryStore(cfg.Policy.RegistryKey)
	default:
		return policy.NewFileStore(cfg.Policy.Path), nil
	}
}
