package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extWAV  = ".wav"
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extOGA  = ".oga"
)

// decodeFile opens and fully decodes a media file into a Source.
// The whole asset is buffered up front: settings changes rebuild the
// stream from the buffer without touching the file system again.
func decodeFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpen(path, err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch strings.ToLower(filepath.Ext(path)) {
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	case extOGG, extOGA:
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, newError(KindDecoderFailed, nil,
			"cannot play %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, newError(KindDecoderFailed, err,
			"cannot play %s: the format might not be supported, or the data is corrupt", path)
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	_ = streamer.Close()
	_ = f.Close()

	return newSource(buf), nil
}
