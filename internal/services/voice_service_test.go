package services

import (
	"context"
	"testing"
	"voyago/pkg/utils"

	"github.com/stretchr/testify/require"
)

func TestRecognizeRejectsUnsupportedFormat(t *testing.T) {
	svc := NewVoiceService("app", "key", "secret")

	_, err := svc.Recognize(context.Background(), []byte{1, 2, 3}, "flac")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRecognizeNormalizesFormatExtension(t *testing.T) {
	// ".WAV" from a filename extension is accepted; credentials missing is the
	// next failure in line.
	svc := NewVoiceService("", "", "")

	_, err := svc.Recognize(context.Background(), []byte{1, 2, 3}, ".WAV")
	require.ErrorIs(t, err, utils.ErrSpeechNotConfigured)
}

func TestRecognizeRejectsEmptyAudio(t *testing.T) {
	svc := NewVoiceService("app", "key", "secret")

	_, err := svc.Recognize(context.Background(), nil, "wav")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRecognizeReportsNotConfigured(t *testing.T) {
	svc := NewVoiceService("app", "key", "secret")

	_, err := svc.Recognize(context.Background(), []byte{1, 2, 3}, "mp3")
	require.ErrorIs(t, err, utils.ErrSpeechNotConfigured)
}
