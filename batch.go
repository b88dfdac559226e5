package pointconv

import (
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// ConvertCloud converts every record of in and stores the results in
// out at the same index. Width, height, density, and sensor pose are
// copied from in unchanged, and out's record slice is resized to
// width x height. A cloud whose size disagrees with its declared
// organization is rejected.
func ConvertCloud[In, Out any](conv Conversion[In, Out], in *Cloud[In], out *Cloud[Out]) error {
	if err := copyCloudLayout(in, out); err != nil {
		return err
	}
	for i, p := range in.Points {
		out.Points[i] = conv.fn(p)
	}
	return nil
}

// ConvertCloudInBatches is ConvertCloud with the element loop striped
// across numBatches goroutines. Per-record conversions have no data
// dependency on one another, so each worker owns an interleaved set of
// indices. out must not be touched by anything else for the duration of
// the call.
func ConvertCloudInBatches[In, Out any](
	logger golog.Logger,
	numBatches int,
	conv Conversion[In, Out],
	in *Cloud[In],
	out *Cloud[Out],
) error {
	if numBatches < 1 {
		numBatches = 1
	}
	if err := copyCloudLayout(in, out); err != nil {
		return err
	}
	logger.Debugf("converting %d points in %d batches", len(in.Points), numBatches)

	var wg sync.WaitGroup
	wg.Add(numBatches)
	for batch := 0; batch < numBatches; batch++ {
		myBatch := batch
		utils.PanicCapturingGo(func() {
			defer wg.Done()
			for i := myBatch; i < len(in.Points); i += numBatches {
				out.Points[i] = conv.fn(in.Points[i])
			}
		})
	}
	wg.Wait()
	return nil
}

func copyCloudLayout[In, Out any](in *Cloud[In], out *Cloud[Out]) error {
	n := in.Width * in.Height
	if len(in.Points) != n {
		return errors.Errorf("cloud has %d points but is organized as %dx%d", len(in.Points), in.Width, in.Height)
	}
	out.Width = in.Width
	out.Height = in.Height
	out.Dense = in.Dense
	out.Origin = in.Origin
	out.Orientation = in.Orientation
	if cap(out.Points) < n {
		out.Points = make([]Out, n)
	} else {
		out.Points = out.Points[:n]
	}
	return nil
}
