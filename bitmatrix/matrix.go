package bitmatrix

// Matrix is an N×N packed bit matrix: N rows, each a bitset over N columns.
// Row-major storage of packed words mirrors the teacher's Dense
// float64 matrix, generalized to bits.
type Matrix struct {
	n    int
	rows []bitset
}

// NewMatrix returns an n×n all-zero Matrix.
func NewMatrix(n int) *Matrix {
	rows := make([]bitset, n)
	for i := range rows {
		rows[i] = newBitset(n)
	}
	return &Matrix{n: n, rows: rows}
}

// N returns the matrix's dimension.
func (m *Matrix) N() int { return m.n }

// Set sets bit (row, col).
func (m *Matrix) Set(row, col int) {
	m.rows[row].set(col)
}

// Get reads bit (row, col).
func (m *Matrix) Get(row, col int) bool {
	return m.rows[row].get(col)
}

// OrRowInto ORs row src into row dst in place, returning whether dst
// changed.
func (m *Matrix) OrRowInto(dst, src int) bool {
	return m.rows[dst].or(&m.rows[src])
}

// RowBits returns the set column indices of row, batched by word (spec
// §4.6.4's "for each set bit a in active[g]").
func (m *Matrix) RowBits(row int) []int {
	return m.rows[row].setBits()
}
