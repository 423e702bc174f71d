package cli

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	corroadmin "github.com/joeblew999/corrosion"
)

// DefaultLocksTop is the number of locks listed when --top is not given.
const DefaultLocksTop = 10

func newPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the admin endpoint answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, corroadmin.Ping{})
		},
	}
}

func newSyncCommand() *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync state commands",
	}

	syncCmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate and print the node's sync state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCommand(cmd, corroadmin.SyncGenerate{})
			},
		},
		&cobra.Command{
			Use:   "reconcile-gaps",
			Short: "Reconcile gaps in the node's version bookkeeping",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCommand(cmd, corroadmin.SyncReconcileGaps{})
			},
		},
	)

	return syncCmd
}

func newLocksCommand() *cobra.Command {
	var top int

	locksCmd := &cobra.Command{
		Use:   "locks",
		Short: "List the longest-held locks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if top < 0 {
				return fmt.Errorf("--top must not be negative, got %d", top)
			}

			return runCommand(cmd, corroadmin.Locks{Top: top})
		},
	}

	locksCmd.Flags().IntVar(&top, "top", DefaultLocksTop, "Number of locks to list")

	return locksCmd
}

func newClusterCommand() *cobra.Command {
	clusterCmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster membership commands",
	}

	clusterCmd.AddCommand(
		&cobra.Command{
			Use:   "rejoin",
			Short: "Make the node rejoin the cluster",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCommand(cmd, corroadmin.ClusterRejoin{})
			},
		},
		&cobra.Command{
			Use:   "members",
			Short: "List known cluster members",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCommand(cmd, corroadmin.ClusterMembers{})
			},
		},
		&cobra.Command{
			Use:   "membership-states",
			Short: "Dump the membership state of every known member",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCommand(cmd, corroadmin.ClusterMembershipStates{})
			},
		},
		&cobra.Command{
			Use:   "set-id <actor-id>",
			Short: "Replace the node's actor id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseUUID("actor id", args[0])
				if err != nil {
					return err
				}

				return runCommand(cmd, corroadmin.ClusterSetID{ActorID: id})
			},
		},
	)

	return clusterCmd
}

func newActorCommand() *cobra.Command {
	actorCmd := &cobra.Command{
		Use:   "actor",
		Short: "Actor inspection commands",
	}

	actorCmd.AddCommand(&cobra.Command{
		Use:   "version <actor-id> <version>",
		Short: "Look up one version of an actor's changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUID("actor id", args[0])
			if err != nil {
				return err
			}

			version, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[1], err)
			}

			return runCommand(cmd, corroadmin.ActorVersion{ActorID: id, Version: version})
		},
	})

	return actorCmd
}

func newSubsCommand() *cobra.Command {
	subsCmd := &cobra.Command{
		Use:   "subs",
		Short: "Subscription commands",
	}

	var (
		hash string
		id   string
	)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Describe one subscription by query hash or id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var info corroadmin.SubsInfo

			if cmd.Flags().Changed("hash") {
				info.Hash = &hash
			}

			if cmd.Flags().Changed("id") {
				parsed, err := parseUUID("subscription id", id)
				if err != nil {
					return err
				}

				info.ID = &parsed
			}

			if info.Hash == nil && info.ID == nil {
				return fmt.Errorf("one of --hash or --id is required")
			}

			return runCommand(cmd, info)
		},
	}

	infoCmd.Flags().StringVar(&hash, "hash", "", "Query hash of the subscription")
	infoCmd.Flags().StringVar(&id, "id", "", "Subscription id")

	subsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List active subscriptions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCommand(cmd, corroadmin.SubsList{})
			},
		},
		infoCmd,
	)

	return subsCmd
}

func newLogCommand() *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Runtime log filter commands",
	}

	logCmd.AddCommand(
		&cobra.Command{
			Use:   "set <filter>",
			Short: "Replace the node's log filter directive",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCommand(cmd, corroadmin.LogSet{Filter: args[0]})
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the node's configured log filter",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCommand(cmd, corroadmin.LogReset{})
			},
		},
	)

	return logCmd
}

func parseUUID(what, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}

	return id, nil
}
