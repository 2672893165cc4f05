// Package qrcode renders QR code PNGs, either as raw bytes or as a
// data-URI string. It is a thin wrapper over github.com/skip2/go-qrcode
// adding input validation and sentinel errors.
//
//	png, err := qrcode.Generate("https://quotekeeper.app/share/"+token, 256)
//
// Sentinel errors ErrEmptyContent and ErrGenerateFailed are comparable with
// errors.Is.
package qrcode
