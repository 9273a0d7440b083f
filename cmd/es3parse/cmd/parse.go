package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/t14raptor/es3parse/ast"
	"github.com/t14raptor/es3parse/generator"
	"github.com/t14raptor/es3parse/internal/config"
	"github.com/t14raptor/es3parse/internal/source"
	"github.com/t14raptor/es3parse/parser"
	"github.com/t14raptor/es3parse/simplifier"
)

func newParseCmd(opts *options) *cobra.Command {
	var params string

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Print the syntax tree of each file",
		Long: `Parse each file and print its syntax tree. A file named "-" is read
from standard input.

With --function the file is taken as a function body and the flag value
as its comma separated parameter list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asFunction := cmd.Flags().Changed("function")
			var errs []error
			for _, path := range args {
				res, err := opts.parse(cmd, path, params, asFunction)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				err = opts.print(cmd.OutOrStdout(), res.node)
				res.release()
				if err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVar(&params, "function", "", "parse the file as a function body with these parameters")
	return cmd
}

type result struct {
	node *ast.Node
	p    *parser.Parser
}

func (r result) release() {
	r.p.Release()
}

// parse reads and parses one file. Folding is done here rather than by the
// parser so the number of folded nodes can be logged.
func (o *options) parse(cmd *cobra.Command, path, params string, asFunction bool) (result, error) {
	src, err := o.read(cmd, path)
	if err != nil {
		return result{}, err
	}

	p := parser.New(o.cfg.Mode() | parser.SkipFolding)
	if o.cfg.Output.Warnings {
		p.SetWarningOutput(cmd.ErrOrStderr())
	} else {
		p.SetWarningOutput(nil)
	}

	start := time.Now()
	var node *ast.Node
	if asFunction {
		node, err = p.ParseFunction(path, params, src)
	} else {
		node, err = p.ParseProgram(path, src)
	}
	if err != nil {
		p.Release()
		o.logger.Debug("parse failed", "file", path, "err", err)
		return result{}, err
	}

	var s simplifier.Simplifier
	if o.cfg.Parser.Fold && node != nil {
		s.Fold(node)
	}
	o.logger.Debug("parsed",
		"file", path,
		"nodes", p.Arena().Len(),
		"folded", s.Folded(),
		"warnings", len(p.Warnings()),
		"elapsed", time.Since(start))
	return result{node: node, p: p}, nil
}

func (o *options) read(cmd *cobra.Command, path string) (string, error) {
	if path != "-" {
		return source.Read(path)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return source.Decode(data)
}

func (o *options) print(w io.Writer, node *ast.Node) error {
	var err error
	switch o.cfg.Output.Format {
	case config.FormatJS:
		if node != nil {
			_, err = fmt.Fprintln(w, generator.Generate(node))
		}
	case config.FormatYAML:
		var out []byte
		out, err = generator.YAML(node)
		if err == nil {
			_, err = w.Write(out)
		}
	default:
		_, err = fmt.Fprintln(w, generator.Dump(node))
	}
	return err
}
