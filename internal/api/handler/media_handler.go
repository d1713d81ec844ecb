package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/terravista/realty-api/internal/api/metrics"
	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// immutableCache is safe because assets are addressed by identifier and
// never rewritten in place: a new upload gets a new id.
const immutableCache = "public, max-age=31536000, immutable"

// MediaHandler serves and manages stored binary assets.
type MediaHandler struct {
	service  ports.MediaService
	maxImage int64
	maxVideo int64
}

func NewMediaHandler(service ports.MediaService, maxImageBytes, maxVideoBytes int64) *MediaHandler {
	return &MediaHandler{service: service, maxImage: maxImageBytes, maxVideo: maxVideoBytes}
}

// GetImage serves a stored image in full.
//
// @Summary      Fetch an image
// @Tags         media
// @Produce      image/*
// @Param        id  path  string  true  "Image id"
// @Success      200
// @Failure      404  {object}  errorEnvelope
// @Router       /api/images/{id} [get]
func (h *MediaHandler) GetImage(c echo.Context) error {
	asset, err := h.service.Fetch(c.Request().Context(), domain.AssetImage, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			metrics.MediaRequestsTotal.WithLabelValues("image", "not_found").Inc()
		}
		return err
	}

	metrics.MediaRequestsTotal.WithLabelValues("image", "full").Inc()
	metrics.MediaBytesServedTotal.WithLabelValues("image").Add(float64(asset.Size))

	header := c.Response().Header()
	header.Set("Cache-Control", immutableCache)
	header.Set(echo.HeaderContentLength, strconv.FormatInt(asset.Size, 10))
	return c.Blob(http.StatusOK, asset.MimeType, asset.Data)
}

// GetVideo serves a stored video, honoring single-range byte requests so
// players can seek. Invalid ranges are refused with 416, never clamped.
//
// @Summary      Fetch a video (range-aware)
// @Tags         media
// @Produce      video/*
// @Param        id     path    string  true   "Video id"
// @Param        Range  header  string  false  "Byte range, e.g. bytes=0-1023"
// @Success      200
// @Success      206
// @Failure      404  {object}  errorEnvelope
// @Failure      416  {object}  errorEnvelope
// @Router       /api/videos/{id} [get]
func (h *MediaHandler) GetVideo(c echo.Context) error {
	asset, err := h.service.Fetch(c.Request().Context(), domain.AssetVideo, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			metrics.MediaRequestsTotal.WithLabelValues("video", "not_found").Inc()
		}
		return err
	}

	header := c.Response().Header()
	header.Set("Accept-Ranges", "bytes")

	rangeHeader := c.Request().Header.Get("Range")
	if rangeHeader == "" {
		metrics.MediaRequestsTotal.WithLabelValues("video", "full").Inc()
		metrics.MediaBytesServedTotal.WithLabelValues("video").Add(float64(asset.Size))
		header.Set(echo.HeaderContentLength, strconv.FormatInt(asset.Size, 10))
		return c.Blob(http.StatusOK, asset.MimeType, asset.Data)
	}

	br, err := domain.ParseRange(rangeHeader, asset.Size)
	if err != nil {
		metrics.MediaRequestsTotal.WithLabelValues("video", "bad_range").Inc()
		header.Set("Content-Range", fmt.Sprintf("bytes */%d", asset.Size))
		return err
	}

	metrics.MediaRequestsTotal.WithLabelValues("video", "partial").Inc()
	metrics.MediaBytesServedTotal.WithLabelValues("video").Add(float64(br.Length()))

	header.Set("Content-Range", br.ContentRange(asset.Size))
	header.Set(echo.HeaderContentLength, strconv.FormatInt(br.Length(), 10))
	return c.Blob(http.StatusPartialContent, asset.MimeType, asset.Data[br.Start:br.End+1])
}

// DeleteImage removes a stored image.
//
// @Summary      Delete an image
// @Tags         media
// @Produce      json
// @Param        id  path  string  true  "Image id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/images/{id} [delete]
func (h *MediaHandler) DeleteImage(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), domain.AssetImage, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "image deleted"})
}

// DeleteVideo removes a stored video.
//
// @Summary      Delete a video
// @Tags         media
// @Produce      json
// @Param        id  path  string  true  "Video id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/videos/{id} [delete]
func (h *MediaHandler) DeleteVideo(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), domain.AssetVideo, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "video deleted"})
}

// UploadImage stores a new image from a multipart form.
//
// @Summary      Upload an image
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  imageUploadResponse
// @Failure      400  {object}  errorEnvelope
// @Router       /api/images/upload [post]
func (h *MediaHandler) UploadImage(c echo.Context) error {
	asset, err := h.upload(c, domain.AssetImage, h.maxImage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, imageUploadResponse{
		Success:      true,
		ImageID:      asset.ID,
		Filename:     asset.Filename,
		OriginalName: asset.OriginalName,
		Size:         asset.Size,
		MimeType:     asset.MimeType,
	})
}

// UploadVideo stores a new video from a multipart form.
//
// @Summary      Upload a video
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Video file"
// @Success      200  {object}  videoUploadResponse
// @Failure      400  {object}  errorEnvelope
// @Router       /api/videos/upload [post]
func (h *MediaHandler) UploadVideo(c echo.Context) error {
	asset, err := h.upload(c, domain.AssetVideo, h.maxVideo)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, videoUploadResponse{
		Success:      true,
		VideoID:      asset.ID,
		Filename:     asset.Filename,
		OriginalName: asset.OriginalName,
		Size:         asset.Size,
		MimeType:     asset.MimeType,
	})
}

func (h *MediaHandler) upload(c echo.Context, kind domain.AssetKind, maxBytes int64) (*domain.Asset, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}

	// Reject on the declared size before buffering anything.
	if fileHeader.Size > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrAssetTooLarge, fileHeader.Size, maxBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: payload larger than declared size", domain.ErrAssetTooLarge)
	}

	asset, err := h.service.Upload(c.Request().Context(), ports.UploadInput{
		Kind:         kind,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get(echo.HeaderContentType),
		Data:         data,
	})
	if err != nil {
		return nil, err
	}

	metrics.UploadBytes.WithLabelValues(string(kind)).Observe(float64(asset.Size))
	return asset, nil
}
