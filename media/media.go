// Package media provides access to cached media blobs (audio recordings and
// shared images) stored under names derived from their date
package media

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/essentialkaos/datakit"
	"github.com/essentialkaos/datakit/fsutil"
	"github.com/essentialkaos/datakit/seal"
)

// ////////////////////////////////////////////////////////////////////////////////// //

const (
	KIND_AUDIO           Kind = 0 // Audio recording
	KIND_SHARE_THUMBNAIL Kind = 1 // Thumbnail of shared image
	KIND_SHARE_IMAGE     Kind = 2 // Shared image
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Kind is media blob kind
type Kind uint8

// Layout contains file name patterns for every media kind. Every pattern
// takes date as the only argument.
type Layout struct {
	Audio          string
	ShareThumbnail string
	ShareImage     string
}

// Store is media store
type Store struct {
	Dir    string          // Cache directory
	Layout Layout          // File naming convention
	Secret *seal.Secret    // Secret for sealed blobs (optional)
	Logger *zerolog.Logger // Logger (optional)
}

// ////////////////////////////////////////////////////////////////////////////////// //

// DefaultLayout is default file naming convention
var DefaultLayout = Layout{
	Audio:          "%d.mp3",
	ShareThumbnail: "%d_thumbnail.jpg",
	ShareImage:     "%d.jpg",
}

// ////////////////////////////////////////////////////////////////////////////////// //

var (
	ErrNilStore    = fmt.Errorf("Store is nil")
	ErrUnknownKind = fmt.Errorf("Unknown media kind")
)

// ////////////////////////////////////////////////////////////////////////////////// //

// NewStore creates new media store with default layout
func NewStore(dir string) *Store {
	return &Store{Dir: dir, Layout: DefaultLayout}
}

// ////////////////////////////////////////////////////////////////////////////////// //

// String returns string representation of kind
func (k Kind) String() string {
	switch k {
	case KIND_AUDIO:
		return "audio"
	case KIND_SHARE_THUMBNAIL:
		return "thumbnail"
	case KIND_SHARE_IMAGE:
		return "image"
	}

	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// ParseKind parses kind name
func ParseKind(name string) (Kind, error) {
	switch name {
	case "audio", "mp3":
		return KIND_AUDIO, nil
	case "thumbnail", "thumb":
		return KIND_SHARE_THUMBNAIL, nil
	case "image":
		return KIND_SHARE_IMAGE, nil
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// Pattern returns file name pattern for given kind
func (l Layout) Pattern(kind Kind) (string, error) {
	var pattern string

	switch kind {
	case KIND_AUDIO:
		pattern = l.Audio
	case KIND_SHARE_THUMBNAIL:
		pattern = l.ShareThumbnail
	case KIND_SHARE_IMAGE:
		pattern = l.ShareImage
	default:
		return "", ErrUnknownKind
	}

	if pattern == "" {
		return DefaultLayout.Pattern(kind)
	}

	return pattern, nil
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Audio returns audio recording with given date
func (s *Store) Audio(date int64) ([]byte, error) {
	return s.Get(KIND_AUDIO, date)
}

// ShareThumbnail returns thumbnail of shared image with given date
func (s *Store) ShareThumbnail(date int64) ([]byte, error) {
	return s.Get(KIND_SHARE_THUMBNAIL, date)
}

// ShareImage returns shared image with given date
func (s *Store) ShareImage(date int64) ([]byte, error) {
	return s.Get(KIND_SHARE_IMAGE, date)
}

// PutAudio stores audio recording with given date
func (s *Store) PutAudio(date int64, data []byte) error {
	return s.Put(KIND_AUDIO, date, data)
}

// PutShareThumbnail stores thumbnail of shared image with given date
func (s *Store) PutShareThumbnail(date int64, data []byte) error {
	return s.Put(KIND_SHARE_THUMBNAIL, date, data)
}

// PutShareImage stores shared image with given date
func (s *Store) PutShareImage(date int64, data []byte) error {
	return s.Put(KIND_SHARE_IMAGE, date, data)
}

// Path returns path to blob of given kind and date
func (s *Store) Path(kind Kind, date int64) (string, error) {
	if s == nil {
		return "", ErrNilStore
	}

	pattern, err := s.Layout.Pattern(kind)

	if err != nil {
		return "", err
	}

	return filepath.Join(s.Dir, fmt.Sprintf(pattern, date)), nil
}

// Get returns blob of given kind and date
func (s *Store) Get(kind Kind, date int64) ([]byte, error) {
	path, err := s.Path(kind, date)

	if err != nil {
		return nil, err
	}

	log := s.logger().With().Stringer("kind", kind).Int64("date", date).Logger()

	var data []byte

	if s.Secret != nil {
		data, err = s.Secret.ReadFile(path)
	} else {
		data, err = fsutil.ReadFile(path)
	}

	switch {
	case errors.Is(err, datakit.ErrNotFound):
		log.Debug().Str("path", path).Msg("Media blob not found")
		return nil, err
	case err != nil:
		log.Warn().Err(err).Str("path", path).Msg("Can't read media blob")
		return nil, err
	}

	return data, nil
}

// Put stores blob of given kind and date
func (s *Store) Put(kind Kind, date int64, data []byte) error {
	path, err := s.Path(kind, date)

	if err != nil {
		return err
	}

	if s.Secret != nil {
		err = s.Secret.WriteFile(path, data)
	} else {
		err = fsutil.WriteFile(path, data)
	}

	if err != nil {
		log := s.logger()
		log.Warn().Err(err).
			Stringer("kind", kind).
			Int64("date", date).
			Str("path", path).
			Msg("Can't write media blob")
		return err
	}

	return nil
}

// ////////////////////////////////////////////////////////////////////////////////// //

// logger returns store logger with component context
func (s *Store) logger() zerolog.Logger {
	if s.Logger == nil {
		return zerolog.Nop()
	}

	return s.Logger.With().Str("component", "media_store").Logger()
}
