package scenes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// AddSegment inserts a new segment into the scene's visual track
// @Summary      Add segment
// @Description  Insert a placeholder segment after an existing one, or append at the end when no anchor is given. Later segments shift right by the new segment's duration.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        segment body types.AddSegmentRequest false "Insertion point"
// @Success      201 {object} types.SegmentResponse "Created segment"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Scene or anchor segment not found"
// @Router       /api/v1/scenes/{id}/segments [post]
func AddSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		// The body is optional; an empty one appends at the end
		var req types.AddSegmentRequest
		if c.Request.ContentLength > 0 {
			if !types.BindJSONOrError(c, &req) {
				return
			}
		}

		segment, err := deps.SceneService.AddSegment(c.Request.Context(), sceneID, req.AfterSegmentUUID)
		if err != nil {
			log.Printf("[ERROR] Failed to add segment to scene %d: %v", sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		notifySceneUpdated(deps, sceneID)
		types.SendCreated(c, types.SegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Segment created"},
			Segment:      segment,
		})
	}
}

// UpdateSegmentTiming adjusts a segment's start or duration
// @Summary      Update segment timing
// @Description  Move or resize one segment on the visual track. Omitted fields are left unchanged; values are clamped to keep the segment valid.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        segmentId path string true "Segment UUID"
// @Param        timing body types.UpdateTimingRequest true "New placement"
// @Success      200 {object} types.SegmentResponse "Updated segment"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Scene or segment not found"
// @Router       /api/v1/scenes/{id}/segments/{segmentId} [patch]
func UpdateSegmentTiming(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		segmentUUID := c.Param("segmentId")

		var req types.UpdateTimingRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		segment, err := deps.SceneService.UpdateSegmentTiming(c.Request.Context(), sceneID, segmentUUID, req.StartTime, req.Duration)
		if err != nil {
			log.Printf("[ERROR] Failed to retime segment %s in scene %d: %v", segmentUUID, sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		notifySceneUpdated(deps, sceneID)
		types.SendSuccess(c, types.SegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Segment updated"},
			Segment:      segment,
		})
	}
}

// DeleteSegment removes a segment from the scene's visual track
// @Summary      Delete segment
// @Description  Remove one segment. Later segments close the gap by shifting left.
// @Tags         segments
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        segmentId path string true "Segment UUID"
// @Success      200 {object} types.BaseResponse "Segment deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid scene ID"
// @Failure      404 {object} types.ErrorResponse "Scene or segment not found"
// @Router       /api/v1/scenes/{id}/segments/{segmentId} [delete]
func DeleteSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		segmentUUID := c.Param("segmentId")

		if err := deps.SceneService.DeleteSegment(c.Request.Context(), sceneID, segmentUUID); err != nil {
			log.Printf("[ERROR] Failed to delete segment %s from scene %d: %v", segmentUUID, sceneID, err)
			types.SendServiceError(c, err)
			return
		}

		notifySceneUpdated(deps, sceneID)
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Segment deleted"})
	}
}

// ReorderSegments moves a segment to a new position in the sequence
// @Summary      Reorder segments
// @Description  Move the segment at one position to another. Segment start times are recomputed so the track stays contiguous.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        order body types.ReorderSegmentsRequest true "From and to positions"
// @Success      200 {object} types.SegmentsResponse "Reordered segments"
// @Failure      400 {object} types.ErrorResponse "Invalid positions"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id}/segments/reorder [post]
func ReorderSegments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.ReorderSegmentsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		segments, err := deps.SceneService.ReorderSegments(c.Request.Context(), sceneID, req.From, req.To)
		if err != nil {
			log.Printf("[ERROR] Failed to reorder segments in scene %d (%d -> %d): %v", sceneID, req.From, req.To, err)
			types.SendServiceError(c, err)
			return
		}

		notifySceneUpdated(deps, sceneID)
		types.SendSuccess(c, types.SegmentsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Segments reordered"},
			Segments:     segments,
			Count:        len(segments),
		})
	}
}
