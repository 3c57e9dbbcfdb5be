package checker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/licensegen/config"
	"github.com/rios0rios0/licensegen/domain"
)

// Client invokes the external license scanner and decodes its JSON output.
type Client struct {
	command string
	args    []string
}

// NewClient creates a scanner client for the configured invocation.
func NewClient(cfg config.ScannerConfig) *Client {
	return &Client{
		command: cfg.Command,
		args:    cfg.Args,
	}
}

var _ domain.GraphFetcher = (*Client)(nil)

// FetchGraph runs the scanner and waits for it to finish. A missing binary,
// a non-zero exit, or unparsable output all surface as ErrScanFailed.
func (c *Client) FetchGraph(ctx context.Context) (domain.DependencyGraph, error) {
	logger.Debugf("Running scanner: %s %s", c.command, strings.Join(c.args, " "))

	cmd := exec.CommandContext(ctx, c.command, c.args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf(
				"%w: %s: %w: %s",
				domain.ErrScanFailed, c.command, err, bytes.TrimSpace(exitErr.Stderr),
			)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrScanFailed, c.command, err)
	}

	return parseGraph(output)
}

// parseGraph decodes the scanner's JSON object of "name@version" keys.
func parseGraph(output []byte) (domain.DependencyGraph, error) {
	var graph domain.DependencyGraph
	if err := json.Unmarshal(output, &graph); err != nil {
		return nil, fmt.Errorf("%w: invalid scanner output: %w", domain.ErrScanFailed, err)
	}
	return graph, nil
}
