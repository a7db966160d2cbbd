package subresource

import "fmt"

// MaxCutAreas is the largest number of pieces Cut can produce: two bands on either side of the
// cutter's layers, plus three pieces of the band the cutter's layers span
const MaxCutAreas = 5

// span is a half-open interval on one axis
type span struct {
	begin, end int
}

// cutAxis splits [begin, end) by [cutBegin, cutEnd). The spans outside the cutter come first,
// and the span inside the cutter, if any, is always last.
func cutAxis(begin, end, cutBegin, cutEnd int) (spans [3]span, count int) {
	if cutBegin > begin && cutBegin < end {
		spans[count] = span{begin: begin, end: cutBegin}
		count++
	}

	if cutEnd > begin && cutEnd < end {
		spans[count] = span{begin: cutEnd, end: end}
		count++
	}

	innerBegin := max(begin, cutBegin)
	innerEnd := min(end, cutEnd)
	if innerBegin < innerEnd {
		spans[count] = span{begin: innerBegin, end: innerEnd}
		count++
	}

	return spans, count
}

// Cut splits target into disjoint pieces whose union is target, such that every piece either
// lies entirely inside cutter or shares no subresource with it. The first count entries of the
// returned array are populated.
//
// The layer axis is cut first into up to three bands. The band covered by the cutter's layers is
// then cut along the mip axis. If the ranges do not overlap, target is returned as the only
// piece.
func Cut(target, cutter Range) (pieces [MaxCutAreas]Range, count int) {
	if !Overlaps(target, cutter) {
		pieces[0] = target
		return pieces, 1
	}

	bands, bandCount := cutAxis(target.BaseLayer, target.EndLayer(), cutter.BaseLayer, cutter.EndLayer())
	for _, band := range bands[:bandCount] {
		layers := target
		layers.BaseLayer = band.begin
		layers.LayerCount = band.end - band.begin

		if band.begin < cutter.BaseLayer || band.end > cutter.EndLayer() {
			count = appendPiece(&pieces, count, layers)
			continue
		}

		mips, mipCount := cutAxis(target.BaseMip, target.EndMip(), cutter.BaseMip, cutter.EndMip())
		for _, mip := range mips[:mipCount] {
			piece := layers
			piece.BaseMip = mip.begin
			piece.MipCount = mip.end - mip.begin
			count = appendPiece(&pieces, count, piece)
		}
	}

	return pieces, count
}

func appendPiece(pieces *[MaxCutAreas]Range, count int, piece Range) int {
	if count >= MaxCutAreas {
		panic(fmt.Sprintf("cutting produced more than %d areas", MaxCutAreas))
	}

	pieces[count] = piece
	return count + 1
}
