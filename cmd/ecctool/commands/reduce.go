package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-eccore/pkg/ecc"
)

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return b, nil
}

func (a *app) reduceCmd() *cobra.Command {
	var (
		curve   string
		which   string
		wide    bool
		generic bool
		scalar  bool
	)
	cmd := &cobra.Command{
		Use:   "reduce HEX",
		Short: "Reduce a big-endian integer modulo p or q",
		Long: `Reduce a big-endian integer of any length modulo the curve's field prime
(--modulus p) or group order (--modulus q).

With --wide the input must be exactly twice the modulus width and the
fixed-width reduction is used; for moduli with the fast reduction this is
the Montgomery residue in * 2^-(64*limbs). --generic selects the
bit-serial path. With --scalar the input is a little-endian digest reduced
modulo q, as in RFC 8032.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := decodeHex(args[0])
			if err != nil {
				return err
			}
			var out []byte
			switch {
			case scalar:
				out, err = ecc.ReduceScalar(curve, in)
			case wide:
				out, err = ecc.ReduceWide(curve, which, in, generic)
			default:
				out, err = ecc.Reduce(curve, which, in)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("reduced", zap.String("curve", curve), zap.String("modulus", which), zap.Int("input_bytes", len(in)), zap.Bool("wide", wide))
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&curve, "curve", "c", "secp256k1", "curve name")
	cmd.Flags().StringVarP(&which, "modulus", "m", "p", "modulus: p or q")
	cmd.Flags().BoolVar(&wide, "wide", false, "fixed-width reduction of a double-width input")
	cmd.Flags().BoolVar(&generic, "generic", false, "use the bit-serial path with --wide")
	cmd.Flags().BoolVar(&scalar, "scalar", false, "reduce a little-endian digest modulo q")
	return cmd
}
