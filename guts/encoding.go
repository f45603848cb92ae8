package guts

import (
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// Codec is satisfied by *T when T can encode itself with cbor-gen.
type Codec[T any] interface {
	*T
	cbg.CBORMarshaler
	cbg.CBORUnmarshaler
}

// WriteCBOR encodes a as a CBOR array of exactly N items. A nil a encodes as null.
func WriteCBOR[T any, A Storage[T], P Codec[T]](w io.Writer, a *Array[T, A]) error {
	if a == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(a.Size())); err != nil {
		return err
	}
	for i := 0; i < a.Size(); i++ {
		v := a.elems[i]
		if err := P(&v).MarshalCBOR(cw); err != nil {
			return xerrors.Errorf("writing element %d: %w", i, err)
		}
	}
	return nil
}

// ReadCBOR decodes a CBOR array of exactly N items into a. On error a is left unchanged.
func ReadCBOR[T any, A Storage[T], P Codec[T]](r io.Reader, a *Array[T, A]) (err error) {
	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajArray {
		return fmt.Errorf("expected cbor array")
	}

	var res Array[T, A]
	if extra != uint64(res.Size()) {
		return xerrors.Errorf("cbor array of %d items into array of %d: %w", extra, res.Size(), ErrLengthMismatch)
	}

	for i := 0; i < res.Size(); i++ {
		var v T
		if err := P(&v).UnmarshalCBOR(cr); err != nil {
			return xerrors.Errorf("reading element %d: %w", i, err)
		}
		res.elems[i] = v
	}

	*a = res
	return nil
}

// WriteBytesCBOR encodes a byte array as a CBOR byte string of N bytes.
func WriteBytesCBOR[A Storage[byte]](w io.Writer, a *Array[byte, A]) error {
	if a == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	return cbg.WriteByteArray(w, a.Slice())
}

// ReadBytesCBOR decodes a CBOR byte string of exactly N bytes into a. On error a is left unchanged.
func ReadBytesCBOR[A Storage[byte]](r io.Reader, a *Array[byte, A]) error {
	var res Array[byte, A]

	b, err := cbg.ReadByteArray(r, uint64(res.Size()))
	if err != nil {
		return xerrors.Errorf("reading cbor bytearray: %w", err)
	}
	if len(b) != res.Size() {
		return xerrors.Errorf("byte string of %d bytes into array of %d: %w", len(b), res.Size(), ErrLengthMismatch)
	}

	res.CopyFrom(b)
	*a = res
	return nil
}
