package tracer

// Split a frame into consecutive row blocks of blockRows rows each. If the
// rows don't add up to the frame height the missing ones are appended to the
// first block. A non-positive blockRows yields a single block covering the
// whole frame.
func ScheduleBlocks(frameH, blockRows int) []BlockRequest {
	if frameH <= 0 {
		return nil
	}
	if blockRows <= 0 || blockRows > frameH {
		blockRows = frameH
	}

	numBlocks := frameH / blockRows
	blocks := make([]BlockRequest, numBlocks)

	blockY := 0
	for idx := range blocks {
		blockH := blockRows
		if idx == 0 {
			blockH += frameH - numBlocks*blockRows
		}
		blocks[idx] = BlockRequest{BlockY: blockY, BlockH: blockH}
		blockY += blockH
	}

	return blocks
}
