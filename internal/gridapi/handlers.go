package gridapi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/signalsfoundry/hexsphere/geojson"
	"github.com/signalsfoundry/hexsphere/hexgrid"
	"github.com/signalsfoundry/hexsphere/internal/logging"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "healthy",
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
	})
}

// handleIndex resolves a geographic coordinate to the containing cell.
func (s *Server) handleIndex(c *fiber.Ctx) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	lng, err := queryFloat(c, "lng")
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	res, err := queryInt(c, "res")
	if err != nil {
		return errBadRequest(c, err.Error())
	}

	cell, err := hexgrid.LatLngToCell(hexgrid.LatLng{Lat: lat, Lng: lng}, res)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cellResponse{Cell: cell.String()})
}

func (s *Server) handleBaseCells(c *fiber.Ctx) error {
	cells := hexgrid.Res0Cells()
	return c.JSON(cellsResponse{Cells: cellsToStrings(cells), Count: len(cells)})
}

func (s *Server) handleResStats(c *fiber.Ctx) error {
	res, err := resParam(c)
	if err != nil {
		return respondError(c, err)
	}

	count, err := hexgrid.NumCells(res)
	if err != nil {
		return respondError(c, err)
	}
	areaKm2, err := hexgrid.HexagonAreaAvgKm2(res)
	if err != nil {
		return respondError(c, err)
	}
	areaM2, err := hexgrid.HexagonAreaAvgM2(res)
	if err != nil {
		return respondError(c, err)
	}
	edgeKm, err := hexgrid.HexagonEdgeLengthAvgKm(res)
	if err != nil {
		return respondError(c, err)
	}
	edgeM, err := hexgrid.HexagonEdgeLengthAvgM(res)
	if err != nil {
		return respondError(c, err)
	}
	pents, err := hexgrid.Pentagons(res)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resStats{
		Resolution:      res,
		Cells:           count,
		Pentagons:       len(pents),
		HexAreaAvgKm2:   areaKm2,
		HexAreaAvgM2:    areaM2,
		EdgeLengthAvgKm: edgeKm,
		EdgeLengthAvgM:  edgeM,
		ClassIII:        res%2 == 1,
	})
}

func (s *Server) handlePentagons(c *fiber.Ctx) error {
	res, err := resParam(c)
	if err != nil {
		return respondError(c, err)
	}
	pents, err := hexgrid.Pentagons(res)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cellsResponse{Cells: cellsToStrings(pents), Count: len(pents)})
}

func (s *Server) handleCellInfo(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	center, err := hexgrid.CellToLatLng(cell)
	if err != nil {
		return respondError(c, err)
	}
	area, err := hexgrid.CellAreaKm2(cell)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(cellInfo{
		Cell:       cell.String(),
		Resolution: cell.Resolution(),
		BaseCell:   cell.BaseCellNumber(),
		Pentagon:   cell.IsPentagon(),
		ClassIII:   cell.IsResClassIII(),
		Center:     toPoint(center),
		AreaKm2:    area,
	})
}

func (s *Server) handleCellBoundary(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	boundary, err := hexgrid.CellToBoundary(cell)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(boundaryResponse{Cell: cell.String(), Boundary: toPoints(boundary)})
}

func (s *Server) handleCellGeoJSON(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	feature, err := geojson.CellFeature(cell)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feature)
}

func (s *Server) handleParent(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	res, err := queryInt(c, "res")
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	parent, err := cell.Parent(res)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cellResponse{Cell: parent.String()})
}

func (s *Server) handleChildren(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	res, err := queryInt(c, "res")
	if err != nil {
		return errBadRequest(c, err.Error())
	}

	size, err := cell.ChildrenSize(res)
	if err != nil {
		return respondError(c, err)
	}
	if limit := int64(s.cfg.Limits.MaxUncompactCells); size > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: %d children exceeds limit %d", ErrLimitExceeded, size, limit))
	}

	children, err := cell.Children(res)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cellsResponse{Cells: cellsToStrings(children), Count: len(children)})
}

func (s *Server) handleCenterChild(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	res, err := queryInt(c, "res")
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	child, err := cell.CenterChild(res)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cellResponse{Cell: child.String()})
}

func (s *Server) handleDisk(c *fiber.Ctx) error {
	cell, k, err := s.traversalParams(c)
	if err != nil {
		return respondError(c, err)
	}
	cells, err := hexgrid.GridDisk(cell, k)
	if err != nil {
		return respondError(c, err)
	}
	s.engine.ObserveTraversal(len(cells))
	return c.JSON(diskResponse{Origin: cell.String(), K: k, Cells: cellsToStrings(cells), Count: len(cells)})
}

func (s *Server) handleDiskDistances(c *fiber.Ctx) error {
	cell, k, err := s.traversalParams(c)
	if err != nil {
		return respondError(c, err)
	}
	rings, err := hexgrid.GridDiskDistances(cell, k)
	if err != nil {
		return respondError(c, err)
	}

	out := make([][]string, len(rings))
	total := 0
	for i, ring := range rings {
		out[i] = cellsToStrings(ring)
		total += len(ring)
	}
	s.engine.ObserveTraversal(total)
	return c.JSON(ringsResponse{Origin: cell.String(), K: k, Rings: out})
}

func (s *Server) handleRing(c *fiber.Ctx) error {
	cell, k, err := s.traversalParams(c)
	if err != nil {
		return respondError(c, err)
	}
	cells, err := hexgrid.GridRing(cell, k)
	if err != nil {
		return respondError(c, err)
	}
	s.engine.ObserveTraversal(len(cells))
	return c.JSON(diskResponse{Origin: cell.String(), K: k, Cells: cellsToStrings(cells), Count: len(cells)})
}

func (s *Server) handleCellEdges(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	edges, err := cell.DirectedEdges()
	if err != nil {
		return respondError(c, err)
	}

	infos := make([]edgeInfo, len(edges))
	for i, e := range edges {
		info, err := edgeMeta(e)
		if err != nil {
			return respondError(c, err)
		}
		infos[i] = info
	}
	return c.JSON(edgesResponse{Cell: cell.String(), Edges: infos})
}

func (s *Server) handleLocalIJ(c *fiber.Ctx) error {
	cell, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	origin, err := queryCell(c, "origin")
	if err != nil {
		return respondError(c, err)
	}
	ij, err := hexgrid.CellToLocalIJ(origin, cell)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(localIJResponse{Origin: origin.String(), Cell: cell.String(), I: ij.I, J: ij.J})
}

// handleFromLocalIJ resolves local IJ coordinates anchored at the path cell
// back to a cell index.
func (s *Server) handleFromLocalIJ(c *fiber.Ctx) error {
	origin, err := cellParam(c)
	if err != nil {
		return respondError(c, err)
	}
	i, err := queryInt(c, "i")
	if err != nil {
		return errBadRequest(c, err.Error())
	}
	j, err := queryInt(c, "j")
	if err != nil {
		return errBadRequest(c, err.Error())
	}

	cell, err := hexgrid.LocalIJToCell(origin, hexgrid.CoordIJ{I: i, J: j})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(localIJResponse{Origin: origin.String(), Cell: cell.String(), I: i, J: j})
}

func (s *Server) handleDistance(c *fiber.Ctx) error {
	from, err := queryCell(c, "from")
	if err != nil {
		return respondError(c, err)
	}
	to, err := queryCell(c, "to")
	if err != nil {
		return respondError(c, err)
	}
	d, err := hexgrid.GridDistance(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(distanceResponse{From: from.String(), To: to.String(), Distance: d})
}

func (s *Server) handlePath(c *fiber.Ctx) error {
	from, err := queryCell(c, "from")
	if err != nil {
		return respondError(c, err)
	}
	to, err := queryCell(c, "to")
	if err != nil {
		return respondError(c, err)
	}

	d, err := hexgrid.GridDistance(from, to)
	if err != nil {
		return respondError(c, err)
	}
	if limit := s.cfg.Limits.MaxGridDistance; d > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: path length %d exceeds limit %d", ErrLimitExceeded, d, limit))
	}

	cells, err := hexgrid.GridPath(from, to)
	if err != nil {
		return respondError(c, err)
	}
	s.engine.ObserveTraversal(len(cells))
	return c.JSON(pathResponse{From: from.String(), To: to.String(), Cells: cellsToStrings(cells), Count: len(cells)})
}

func (s *Server) handleEdgeInfo(c *fiber.Ctx) error {
	edge, err := edgeParam(c)
	if err != nil {
		return respondError(c, err)
	}
	info, err := edgeMeta(edge)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}

func (s *Server) handleEdgeBoundary(c *fiber.Ctx) error {
	edge, err := edgeParam(c)
	if err != nil {
		return respondError(c, err)
	}
	boundary, err := edge.Boundary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(edgeBoundaryResponse{Edge: edge.String(), Boundary: toPoints(boundary)})
}

func (s *Server) handleEdgeGeoJSON(c *fiber.Ctx) error {
	edge, err := edgeParam(c)
	if err != nil {
		return respondError(c, err)
	}
	feature, err := geojson.EdgeFeature(edge)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feature)
}

func (s *Server) handleCellsToEdge(c *fiber.Ctx) error {
	var req edgeRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	origin, err := hexgrid.ParseCell(req.Origin)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: origin %q", hexgrid.ErrInvalidCell, req.Origin))
	}
	destination, err := hexgrid.ParseCell(req.Destination)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: destination %q", hexgrid.ErrInvalidCell, req.Destination))
	}

	edge, err := hexgrid.CellsToDirectedEdge(origin, destination)
	if err != nil {
		return respondError(c, err)
	}
	info, err := edgeMeta(edge)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}

func (s *Server) handleFill(c *fiber.Ctx) error {
	var req fillRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	if len(req.Exterior) < 3 {
		return errBadRequest(c, "exterior ring must have at least 3 vertices")
	}

	vertices := len(req.Exterior)
	for _, hole := range req.Holes {
		vertices += len(hole)
	}
	if limit := s.cfg.Limits.MaxPolygonVertices; vertices > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: %d polygon vertices exceeds limit %d", ErrLimitExceeded, vertices, limit))
	}

	start := time.Now()
	cells, err := hexgrid.PolygonToCells(req.polygon(), req.Resolution)
	if err != nil {
		return respondError(c, err)
	}
	s.engine.ObserveFill(time.Since(start), len(cells))

	if limit := s.cfg.Limits.MaxFillCells; len(cells) > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: fill produced %d cells, limit %d", ErrLimitExceeded, len(cells), limit))
	}

	logging.LoggerFromContext(c.UserContext()).Debug(c.UserContext(), "polygon filled",
		logging.Int("resolution", req.Resolution),
		logging.Int("cells", len(cells)),
		logging.Duration("duration", time.Since(start)),
	)
	return c.JSON(fillResponse{Resolution: req.Resolution, Cells: cellsToStrings(cells), Count: len(cells)})
}

// handleFillGeoJSON fills a GeoJSON polygon or multipolygon, provided as a
// Feature or bare geometry, and returns the covered cells as a
// FeatureCollection.
func (s *Server) handleFillGeoJSON(c *fiber.Ctx) error {
	res, err := queryInt(c, "res")
	if err != nil {
		return errBadRequest(c, err.Error())
	}

	geom, err := geojson.GeometryFromJSON(c.Body())
	if err != nil {
		return respondError(c, err)
	}
	if limit := s.cfg.Limits.MaxPolygonVertices; geojson.VertexCount(geom) > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: polygon vertices exceed limit %d", ErrLimitExceeded, limit))
	}

	start := time.Now()
	cells, err := geojson.FillGeometry(geom, res)
	if err != nil {
		return respondError(c, err)
	}
	s.engine.ObserveFill(time.Since(start), len(cells))

	if limit := s.cfg.Limits.MaxFillCells; len(cells) > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: fill produced %d cells, limit %d", ErrLimitExceeded, len(cells), limit))
	}

	fc, err := geojson.CellCollection(cells)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fc)
}

func (s *Server) handleCompact(c *fiber.Ctx) error {
	var req compactRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	if len(req.Cells) == 0 {
		return errBadRequest(c, "cells are required")
	}
	if limit := s.cfg.Limits.MaxBatchCells; len(req.Cells) > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: %d cells exceeds batch limit %d", ErrLimitExceeded, len(req.Cells), limit))
	}

	cells, err := parseCells(req.Cells)
	if err != nil {
		return respondError(c, err)
	}
	compacted, err := hexgrid.CompactCells(cells)
	if err != nil {
		return respondError(c, err)
	}
	s.engine.ObserveCompaction(len(cells), len(compacted))
	return c.JSON(cellsResponse{Cells: cellsToStrings(compacted), Count: len(compacted)})
}

func (s *Server) handleUncompact(c *fiber.Ctx) error {
	var req uncompactRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	if len(req.Cells) == 0 {
		return errBadRequest(c, "cells are required")
	}
	if limit := s.cfg.Limits.MaxBatchCells; len(req.Cells) > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: %d cells exceeds batch limit %d", ErrLimitExceeded, len(req.Cells), limit))
	}

	cells, err := parseCells(req.Cells)
	if err != nil {
		return respondError(c, err)
	}

	// Pre-flight the expansion size before materializing anything.
	var total int64
	for _, cell := range cells {
		n, err := cell.ChildrenSize(req.Resolution)
		if err != nil {
			return respondError(c, err)
		}
		total += n
	}
	if limit := int64(s.cfg.Limits.MaxUncompactCells); total > limit {
		s.engine.IncGuardrailTrips()
		return respondError(c, fmt.Errorf("%w: uncompacting to %d cells exceeds limit %d", ErrLimitExceeded, total, limit))
	}

	expanded, err := hexgrid.UncompactCells(cells, req.Resolution)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fillResponse{Resolution: req.Resolution, Cells: cellsToStrings(expanded), Count: len(expanded)})
}

// traversalParams parses the cell path parameter and k query parameter shared
// by the disk, ring, and disk-distances handlers, applying the grid distance
// guardrail.
func (s *Server) traversalParams(c *fiber.Ctx) (hexgrid.Cell, int, error) {
	cell, err := cellParam(c)
	if err != nil {
		return 0, 0, err
	}
	k, err := queryInt(c, "k")
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", hexgrid.ErrInvalidK, err)
	}
	if limit := s.cfg.Limits.MaxGridDistance; k > limit {
		s.engine.IncGuardrailTrips()
		return 0, 0, fmt.Errorf("%w: k=%d exceeds limit %d", ErrLimitExceeded, k, limit)
	}
	return cell, k, nil
}

func edgeMeta(e hexgrid.DirectedEdge) (edgeInfo, error) {
	origin, err := e.Origin()
	if err != nil {
		return edgeInfo{}, err
	}
	destination, err := e.Destination()
	if err != nil {
		return edgeInfo{}, err
	}
	km, err := hexgrid.EdgeLengthKm(e)
	if err != nil {
		return edgeInfo{}, err
	}
	return edgeInfo{
		Edge:        e.String(),
		Origin:      origin.String(),
		Destination: destination.String(),
		LengthKm:    km,
	}, nil
}

func cellParam(c *fiber.Ctx) (hexgrid.Cell, error) {
	raw := c.Params("cell")
	cell, err := hexgrid.ParseCell(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", hexgrid.ErrInvalidCell, raw)
	}
	return cell, nil
}

func edgeParam(c *fiber.Ctx) (hexgrid.DirectedEdge, error) {
	raw := c.Params("edge")
	edge, err := hexgrid.ParseDirectedEdge(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", hexgrid.ErrInvalidEdge, raw)
	}
	return edge, nil
}

func resParam(c *fiber.Ctx) (int, error) {
	raw := c.Params("res")
	res, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", hexgrid.ErrInvalidResolution, raw)
	}
	return res, nil
}

func queryCell(c *fiber.Ctx, key string) (hexgrid.Cell, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s query parameter is required", hexgrid.ErrInvalidCell, key)
	}
	cell, err := hexgrid.ParseCell(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", hexgrid.ErrInvalidCell, key, raw)
	}
	return cell, nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fmt.Errorf("%s query parameter is required", key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}

func queryFloat(c *fiber.Ctx, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fmt.Errorf("%s query parameter is required", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return v, nil
}
