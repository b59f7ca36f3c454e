// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc encodes and decodes OpenSoundControl messages.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent, message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	's' (String)
//	'i' (Int32)
//	'f' (Float32)
//	'b' (Blob)
//
//- Works over any io.Reader / io.Writer. The package never opens sockets or files.
//
//Messages
//
//An OSC message consists of an OSC address, an OSC typetag string and zero or more OSC arguments.
//Every OSC-string (the address, the typetags and string arguments) is NUL terminated and padded
//with NULs to a multiple of 4 bytes. Numbers are big-endian.
//
//Blobs are written as a 4 byte length followed by the raw bytes. Unlike the OSC 1.0 specification
//no alignment bytes follow the payload, unless Codec.PadBlobs is set.
//
//Errors
//
//Decoding never panics on malformed input. Failures from the source are returned wrapped, and
//problems with the data itself match one of ErrInvalidEncoding, ErrUnknownTypeTag or
//ErrMalformedTypeTags through errors.Is.
//
//Usage
//
//Encoding:
//  msg := osc.NewMessage("/test", osc.String("Hello"), osc.Int(4))
//  if err := osc.Encode(w, msg); err != nil {
//      return err
//  }
//
//Decoding:
//  msg, err := osc.Decode(r)
//  if errors.Is(err, osc.ErrUnknownTypeTag) {
//      // drop the message
//  }
//
//Transports live in the oscnet package.
package osc
