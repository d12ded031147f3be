package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-eccore/pkg/ecc"
)

func compressCmd() *cobra.Command {
	var (
		curve string
		base  bool
	)
	cmd := &cobra.Command{
		Use:   "compress X Y",
		Short: "Encode big-endian affine coordinates of an Edwards point",
		Args: func(cmd *cobra.Command, args []string) error {
			if base {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := ecc.NewCodec(curve)
			if err != nil {
				return err
			}
			var enc []byte
			if base {
				enc = codec.Base()
			} else {
				x, err := decodeHex(args[0])
				if err != nil {
					return err
				}
				y, err := decodeHex(args[1])
				if err != nil {
					return err
				}
				if enc, err = codec.Encode(x, y); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(enc))
			return nil
		},
	}
	cmd.Flags().StringVarP(&curve, "curve", "c", "ed25519", "Edwards curve name")
	cmd.Flags().BoolVar(&base, "base", false, "encode the generator")
	return cmd
}

func (a *app) decompressCmd() *cobra.Command {
	var (
		curve      string
		montgomery bool
	)
	cmd := &cobra.Command{
		Use:   "decompress HEX",
		Short: "Decode an Edwards point encoding",
		Long: `Decode an RFC 8032 point encoding, rejecting non-canonical or off-curve
input, and print the big-endian affine coordinates. With --montgomery the
little-endian X25519 u coordinate of an ed25519 point is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := ecc.NewCodec(curve)
			if err != nil {
				return err
			}
			enc, err := decodeHex(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if montgomery {
				u, err := codec.MontgomeryU(enc)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "u: %x\n", u)
				return nil
			}
			x, y, err := codec.Decode(enc)
			if err != nil {
				a.logger.Info("encoding rejected", zap.String("curve", codec.Curve()), zap.Error(err))
				return err
			}
			fmt.Fprintf(out, "x: %x\ny: %x\n", x, y)
			return nil
		},
	}
	cmd.Flags().StringVarP(&curve, "curve", "c", "ed25519", "Edwards curve name")
	cmd.Flags().BoolVar(&montgomery, "montgomery", false, "print the X25519 u coordinate (ed25519)")
	return cmd
}
