package exposure

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-apogee/internal/testutil"
	"github.com/cwbudde/algo-apogee/nddata"
)

func BenchmarkCollapse(b *testing.B) {
	sizes := []int{256, 1024, 2048}
	for _, n := range sizes {
		b.Run("uptheramp/"+strconv.Itoa(n), func(b *testing.B) {
			const reads = 8
			c, err := NewCube(nddata.Shape{n, n / 8, reads}, testutil.LinearRamp(n, n/8, reads, 0, 1))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Collapse(UpTheRamp); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
