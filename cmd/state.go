package cmd

import (
	"fmt"
	"io"

	"fisheye/internal/app"
	"fisheye/internal/fisheye"
	"fisheye/internal/store"

	"github.com/spf13/cobra"
)

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or clear the remembered active items",
		Long: `Each dock remembers its active item and the pointer offset of the click
that activated it. These commands read or remove those entries from the
configured store.`,
	}
	cmd.AddCommand(newStateShowCmd())
	cmd.AddCommand(newStateClearCmd())
	return cmd
}

func newStateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [dock-id]",
		Short: "Print the remembered state of one or all docks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(kv store.Store) error {
				return showState(cmd.OutOrStdout(), kv, dockArg(args))
			})
		},
	}
}

func newStateClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [dock-id]",
		Short: "Forget the remembered state of one or all docks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(kv store.Store) error {
				n, err := clearState(kv, dockArg(args))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries\n", n)
				return nil
			})
		},
	}
}

func withStore(fn func(store.Store) error) error {
	application, err := newApplication(app.NewConfig(true, debug, "", "", configPath))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close()
	return fn(application.Services().Store)
}

// stateKeys returns the persisted keys of dockID, or of every dock when
// dockID is empty.
func stateKeys(kv store.Store, dockID string) ([]string, error) {
	if dockID != "" {
		return []string{fisheye.ActiveKey(dockID), fisheye.OffsetKey(dockID)}, nil
	}
	active, err := kv.Keys(fisheye.ActiveKeyPrefix)
	if err != nil {
		return nil, err
	}
	offsets, err := kv.Keys(fisheye.OffsetKeyPrefix)
	if err != nil {
		return nil, err
	}
	return append(active, offsets...), nil
}

func showState(w io.Writer, kv store.Store, dockID string) error {
	keys, err := stateKeys(kv, dockID)
	if err != nil {
		return err
	}
	found := 0
	for _, k := range keys {
		v, ok, err := kv.Get(k)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		found++
		fmt.Fprintf(w, "%s=%s\n", k, v)
	}
	if found == 0 {
		fmt.Fprintln(w, "no state stored")
	}
	return nil
}

func clearState(kv store.Store, dockID string) (int, error) {
	keys, err := stateKeys(kv, dockID)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, k := range keys {
		if _, ok, err := kv.Get(k); err != nil {
			return removed, err
		} else if !ok {
			continue
		}
		if err := kv.Delete(k); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
