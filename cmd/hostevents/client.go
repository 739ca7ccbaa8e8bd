package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hostevents/internal/events"
	"hostevents/pkg/types"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func newEmitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "emit <kind> [json]",
		Short: "Push a native notification to a running daemon",
		Example: "  hostevents emit app-launched\n" +
			`  hostevents emit component-lifecycle '{"type":"ComponentDidAppear","componentId":"c1"}'`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, k := range events.Kinds() {
				if k.Native() {
					names = append(names, k.String())
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			body := ""
			if len(args) == 2 {
				body = args[1]
			}
			req, err := newEmitRequest(cmd.Context(), opts.cfg.Server, args[0], body)
			if err != nil {
				return err
			}
			return send(cmd.OutOrStdout(), req)
		},
	}
}

func newCommandCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "command <name> [json]",
		Short:   "Notify the daemon's command listeners",
		Example: `  hostevents command push '{"screen":"details"}'`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := ""
			if len(args) == 2 {
				payload = args[1]
			}
			req, err := newCommandRequest(cmd.Context(), opts.cfg.Server, args[0], payload)
			if err != nil {
				return err
			}
			return send(cmd.OutOrStdout(), req)
		},
	}
}

// newEmitRequest builds POST /native/{kind}. body must be empty or valid JSON.
func newEmitRequest(ctx context.Context, server, kind, body string) (*http.Request, error) {
	k, err := events.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	if !k.Native() {
		return nil, fmt.Errorf("%s is not a native kind; use the command subcommand", kind)
	}
	if body != "" && !json.Valid([]byte(body)) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}
	u, err := endpoint(server, "native", k.String())
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// newCommandRequest builds POST /commands. payload must be empty or valid JSON.
func newCommandRequest(ctx context.Context, server, name, payload string) (*http.Request, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("command name is required")
	}
	cr := types.CommandRequest{Name: name}
	if payload != "" {
		var v any
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			return nil, fmt.Errorf("payload is not valid JSON: %w", err)
		}
		cr.Payload = v
	}
	b, err := json.Marshal(cr)
	if err != nil {
		return nil, err
	}
	u, err := endpoint(server, "commands")
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func endpoint(server string, elem ...string) (string, error) {
	base, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("server url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("server url %q must include scheme and host", server)
	}
	return base.JoinPath(elem...).String(), nil
}

// send performs req and prints the acknowledgment, or returns the server's error.
func send(out io.Writer, req *http.Request) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusAccepted {
		var er types.ErrorResponse
		if json.Unmarshal(b, &er) == nil && er.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, er.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	var ack types.AcceptedResponse
	if err := json.Unmarshal(b, &ack); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	_, err = fmt.Fprintf(out, "queued %s (queue length %d)\n", ack.Kind, ack.QueueLen)
	return err
}
