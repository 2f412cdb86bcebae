package main

import (
	"fmt"

	"github.com/mwalczyk/postbrief"
)

// Run executes the "key set" command.
func (c *KeySetCmd) Run(deps *Dependencies) error {
	if err := deps.Credentials.SaveUserKey(deps.Ctx, c.Key); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postbrief.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "API key saved.")
	return nil
}

// Run executes the "key show" command.
func (c *KeyShowCmd) Run(deps *Dependencies) error {
	stored, err := deps.Keys.Get(deps.Ctx)
	if err != nil {
		return err
	}

	active := deps.Credentials.ActiveKey()
	switch {
	case active == "":
		fmt.Fprintln(deps.Stdout, "No active API key.")
	case stored == active:
		fmt.Fprintf(deps.Stdout, "Active key: stored (%s)\n", maskKey(active))
	default:
		fmt.Fprintf(deps.Stdout, "Active key: environment (%s)\n", maskKey(active))
	}

	if stored != "" && stored != active {
		fmt.Fprintf(deps.Stdout, "Stored key: %s (shadowed by FIREWORKS_API_KEY)\n", maskKey(stored))
	}

	return nil
}

// Run executes the "key clear" command.
func (c *KeyClearCmd) Run(deps *Dependencies) error {
	if err := deps.Keys.Remove(deps.Ctx); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, "Stored API key removed.")
	return nil
}

// maskKey keeps the first four characters of a key for identification.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
