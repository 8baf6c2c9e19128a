package services

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"video-sharing/models"
)

// MediaProbe reads media metadata and renders still frames.
type MediaProbe interface {
	// Duration returns the length of the media file in seconds.
	Duration(ctx context.Context, path string) (float64, error)
	// ExtractFrame writes the frame at the given second to out as an image.
	ExtractFrame(ctx context.Context, path string, at float64, out string) error
}

type ffmpeg struct {
	ffprobePath string
	ffmpegPath  string
}

func NewFFmpeg() MediaProbe {
	return &ffmpeg{ffprobePath: "ffprobe", ffmpegPath: "ffmpeg"}
}

func (f *ffmpeg) Duration(ctx context.Context, path string) (float64, error) {
	// ffprobe -v error -show_entries format=duration -of default=noprint_wrappers=1:nokey=1 input
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	out, err := exec.CommandContext(ctx, f.ffprobePath, args...).Output()
	if err != nil {
		return 0, models.BadRequest("invalid video").WithDescription("ffprobe failed").
			AddParams(fmt.Sprintf("path: %v, err: %v", path, err))
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, models.BadRequest("invalid video").WithDescription("unreadable duration").
			AddParams(fmt.Sprintf("path: %v, output: %s", path, out))
	}
	return duration, nil
}

func (f *ffmpeg) ExtractFrame(ctx context.Context, path string, at float64, out string) error {
	// ffmpeg -y -ss 12.5 -i input -frames:v 1 out.png
	args := []string{
		"-y",
		"-nostdin",
		"-ss", strconv.FormatFloat(at, 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
		out,
	}
	output, err := exec.CommandContext(ctx, f.ffmpegPath, args...).CombinedOutput()
	if err != nil {
		return models.Internal("failed to extract thumbnail",
			fmt.Errorf("ffmpeg thumb error: %v, output: %s", err, string(output)))
	}
	return nil
}
