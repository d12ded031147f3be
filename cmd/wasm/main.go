//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-eccore/pkg/ecc"
)

func main() {
	c := make(chan struct{})

	fmt.Println("go-eccore WASM initialized")

	js.Global().Set("GoECCore", map[string]interface{}{
		"Curves":      js.FuncOf(Curves),
		"Reduce":      js.FuncOf(Reduce),
		"Compress":    js.FuncOf(Compress),
		"Decompress":  js.FuncOf(Decompress),
		"MontgomeryU": js.FuncOf(MontgomeryU),
	})

	<-c
}

func errorf(format string, args ...interface{}) string {
	return "error: " + fmt.Sprintf(format, args...)
}

func marshal(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return errorf("encoding result: %v", err)
	}
	return string(b)
}

func hexArgs(args []js.Value, from int) ([][]byte, error) {
	out := make([][]byte, 0, len(args)-from)
	for _, a := range args[from:] {
		b, err := hex.DecodeString(a.String())
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Curves returns the curve table as a JSON array.
func Curves(this js.Value, args []js.Value) interface{} {
	return marshal(ecc.Curves())
}

// Reduce reduces a big-endian hex integer.
// Arguments:
// 0: curve name
// 1: "p" or "q"
// 2: hex input
// Returns:
// hex result or an error string
func Reduce(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, modulus, hex)"
	}
	in, err := hexArgs(args, 2)
	if err != nil {
		return errorf("invalid hex: %v", err)
	}
	out, err := ecc.Reduce(args[0].String(), args[1].String(), in[0])
	if err != nil {
		return errorf("%v", err)
	}
	return hex.EncodeToString(out)
}

// Compress encodes big-endian hex coordinates.
// Arguments:
// 0: curve name
// 1: x
// 2: y
func Compress(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, x, y)"
	}
	codec, err := ecc.NewCodec(args[0].String())
	if err != nil {
		return errorf("%v", err)
	}
	xy, err := hexArgs(args, 1)
	if err != nil {
		return errorf("invalid hex: %v", err)
	}
	enc, err := codec.Encode(xy[0], xy[1])
	if err != nil {
		return errorf("%v", err)
	}
	return hex.EncodeToString(enc)
}

// Decompress decodes a hex point encoding.
// Arguments:
// 0: curve name
// 1: encoding
// Returns:
// JSON object {"x": ..., "y": ...} or an error string
func Decompress(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, encoding)"
	}
	codec, err := ecc.NewCodec(args[0].String())
	if err != nil {
		return errorf("%v", err)
	}
	enc, err := hexArgs(args, 1)
	if err != nil {
		return errorf("invalid hex: %v", err)
	}
	x, y, err := codec.Decode(enc[0])
	if err != nil {
		return errorf("%v", err)
	}
	return marshal(map[string]string{
		"x": hex.EncodeToString(x),
		"y": hex.EncodeToString(y),
	})
}

// MontgomeryU returns the X25519 u coordinate of an ed25519 encoding.
func MontgomeryU(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (encoding)"
	}
	codec, err := ecc.NewCodec("ed25519")
	if err != nil {
		return errorf("%v", err)
	}
	enc, err := hexArgs(args, 0)
	if err != nil {
		return errorf("invalid hex: %v", err)
	}
	u, err := codec.MontgomeryU(enc[0])
	if err != nil {
		return errorf("%v", err)
	}
	return hex.EncodeToString(u)
}
