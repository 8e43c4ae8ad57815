package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"github.com/sliverarmory/atshim"
)

var errUnavailable = errors.New("library unavailable")

// wavFormatFloat is the WAVE_FORMAT_IEEE_FLOAT format tag.
const wavFormatFloat = 3

func newProbeCmd() *cobra.Command {
	var wavPath string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Load the library and report the bound entry points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			var in *atshim.AudioStreamBasicDescription
			if wavPath != "" {
				var err error
				in, err = describeWAV(wavPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "format: %s\n", formatString(in))
			}

			ready := atshim.Ready()
			if ready {
				fmt.Fprintf(w, "library: %s\n", atshim.LibraryPath())
				for _, name := range atshim.Symbols() {
					state := "missing"
					if atshim.Bound(name) {
						state = "bound"
					}
					fmt.Fprintf(w, "%s\t%s\n", state, name)
				}
			} else {
				fmt.Fprintln(w, "library: unavailable")
			}

			if in != nil {
				probeConverter(w, in)
			}
			if !ready {
				return errUnavailable
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&wavPath, "wav", "", "WAV file whose format is offered to an AAC converter")
	return cmd
}

// describeWAV reads the header of the WAV file at path and describes its
// samples as an interleaved linear PCM stream.
func describeWAV(path string) (*atshim.AudioStreamBasicDescription, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%s: not a valid WAV file", path)
	}
	return streamDescription(d.Format(), int(d.BitDepth), d.WavAudioFormat == wavFormatFloat)
}

func streamDescription(format *audio.Format, bitDepth int, float bool) (*atshim.AudioStreamBasicDescription, error) {
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, errors.New("incomplete WAV format")
	}
	if bitDepth <= 0 || bitDepth%8 != 0 {
		return nil, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
	flags := atshim.AudioFormatFlagIsPacked
	switch {
	case float:
		flags |= atshim.LinearPCMFormatFlagIsFloat
	case bitDepth > 8:
		// 8-bit WAV samples are unsigned.
		flags |= atshim.LinearPCMFormatFlagIsSignedInteger
	}
	frame := uint32(format.NumChannels * bitDepth / 8)
	return &atshim.AudioStreamBasicDescription{
		SampleRate:       float64(format.SampleRate),
		FormatID:         atshim.AudioFormatLinearPCM,
		FormatFlags:      flags,
		BytesPerPacket:   frame,
		FramesPerPacket:  1,
		BytesPerFrame:    frame,
		ChannelsPerFrame: uint32(format.NumChannels),
		BitsPerChannel:   uint32(bitDepth),
	}, nil
}

func formatString(d *atshim.AudioStreamBasicDescription) string {
	kind := "int"
	if d.FormatFlags&atshim.LinearPCMFormatFlagIsFloat != 0 {
		kind = "float"
	}
	return fmt.Sprintf("lpcm %g Hz %d ch %d bit %s", d.SampleRate, d.ChannelsPerFrame, d.BitsPerChannel, kind)
}

// probeConverter asks the library for an AAC encoder accepting in.
func probeConverter(w io.Writer, in *atshim.AudioStreamBasicDescription) {
	out := atshim.AudioStreamBasicDescription{
		SampleRate:       in.SampleRate,
		FormatID:         atshim.AudioFormatMPEG4AAC,
		FramesPerPacket:  1024,
		ChannelsPerFrame: in.ChannelsPerFrame,
	}
	var converter atshim.AudioConverterRef
	status := atshim.AudioConverterNew(in, &out, &converter)
	fmt.Fprintf(w, "AudioConverterNew: %v\n", status)
	if status != atshim.NoErr {
		return
	}
	fmt.Fprintf(w, "AudioConverterDispose: %v\n", atshim.AudioConverterDispose(converter))
}
