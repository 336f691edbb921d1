package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qalgebra/internal/codec"
	"github.com/katalvlaran/qalgebra/quantum"
)

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <x> <y>",
		Short: "Compose two operands (Ket·Bra, Bra·Ket, Operator·Ket|Bra|Operator)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseOperand(args[0])
			if err != nil {
				return err
			}
			y, err := a.parseOperand(args[1])
			if err != nil {
				return err
			}
			out, err := quantum.Apply(x, y)
			if err != nil {
				return err
			}
			a.log.Info().
				Str("left", quantum.KindOf(x).String()).
				Str("right", quantum.KindOf(y).String()).
				Str("result", quantum.KindOf(out).String()).
				Msg("applied")

			return a.printResult(cmd.OutOrStdout(), "", out)
		},
	}
}

// newScalarCmd builds mul, div and pow around the matching table.
func newScalarCmd(a *app, name, short string, op func(x, s any) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <operand> <scalar>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseOperand(args[0])
			if err != nil {
				return err
			}
			s, err := a.parseOperand(args[1])
			if err != nil {
				return err
			}
			out, err := op(x, s)
			if err != nil {
				return err
			}

			return a.printResult(cmd.OutOrStdout(), "", out)
		},
	}
}

func newDaggerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dagger <operand>",
		Short: "Print the adjoint of a Ket, Bra or Operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseValue(args[0])
			if err != nil {
				return err
			}
			plain, _ := cmd.Flags().GetBool("no-conjugate")

			var out quantum.Value
			switch x := v.(type) {
			case quantum.Ket:
				if plain {
					out = x.ConjugateTranspose()
				} else {
					out = x.Dagger()
				}
			case quantum.Bra:
				if plain {
					out = x.ConjugateTranspose()
				} else {
					out = x.Dagger()
				}
			case quantum.Operator:
				if plain {
					return fmt.Errorf("--no-conjugate applies to Kets and Bras only: %w", errOperand)
				}
				out = x.Dagger()
			}

			return a.printResult(cmd.OutOrStdout(), "", out)
		},
	}
	cmd.Flags().Bool("no-conjugate", false, "Flip orientation without conjugating (Kets and Bras)")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <operand>",
		Short: "Report structural properties (Hermitian, unitary, trace; norm for vectors)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseValue(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			switch x := v.(type) {
			case quantum.Ket:
				return a.printResult(w, "norm", x.Norm())
			case quantum.Bra:
				return a.printResult(w, "norm", x.Dagger().Norm())
			case quantum.Operator:
				if err := a.printResult(w, "hermitian", x.IsHermitian(a.opts...)); err != nil {
					return err
				}
				if err := a.printResult(w, "unitary", x.IsUnitary(a.opts...)); err != nil {
					return err
				}
				tr, err := x.Trace()
				if err != nil {
					a.log.Debug().Err(err).Msg("trace undefined")
					return nil
				}
				return a.printResult(w, "trace", tr)
			}

			return nil
		},
	}
}

func newCommutatorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commutator <A> <B>",
		Short: "Print [A, B] = A·B − B·A and whether A and B commute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseOperator(args[0])
			if err != nil {
				return err
			}
			y, err := a.parseOperator(args[1])
			if err != nil {
				return err
			}
			anti, _ := cmd.Flags().GetBool("anti")

			var out quantum.Operator
			if anti {
				out, err = quantum.AntiCommutator(x, y)
			} else {
				out, err = quantum.Commutator(x, y)
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := a.printResult(w, "", out); err != nil {
				return err
			}

			return a.printResult(w, "commute", quantum.Commute(x, y, a.opts...))
		},
	}
	cmd.Flags().Bool("anti", false, "Print the anticommutator {A, B} = A·B + B·A instead")

	return cmd
}

func newExpectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expect <operator> <ket>",
		Short: "Print the expectation value ⟨ψ|A|ψ⟩",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := a.parseOperator(args[0])
			if err != nil {
				return err
			}
			v, err := a.parseValue(args[1])
			if err != nil {
				return err
			}
			k, ok := v.(quantum.Ket)
			if !ok {
				return fmt.Errorf("got %s, want ket=: %w", v.Kind(), errOperand)
			}
			ev, err := op.ExpectationValue(k)
			if err != nil {
				return err
			}

			return a.printResult(cmd.OutOrStdout(), "", ev)
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <operand>",
		Short: "Write an operand to a .json or .msgpack file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseValue(args[0])
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			var data []byte
			if strings.EqualFold(filepath.Ext(out), msgpackExt) {
				rec, err := codec.NewRecord(v.Kind().String(), v.Matrix().Data())
				if err != nil {
					return err
				}
				if data, err = codec.MarshalMsgpack(rec); err != nil {
					return err
				}
			} else if data, err = codec.FormatJSON(v.Matrix().Data()); err != nil {
				return err
			}

			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			a.log.Info().Str("kind", v.Kind().String()).Str("path", out).Int("bytes", len(data)).Msg("operand written")

			return nil
		},
	}
	cmd.Flags().String("out", "", "Output path (.msgpack for MessagePack, JSON otherwise)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
