// Package partition implements the ordered-partition data type and the
// primitive operations the refine, canon, and orbit packages are built on
// top of.
//
// A Partition of {0,...,n-1} is two parallel arrays:
//
//	Lab[0..n) - a permutation of {0,...,n-1}: the vertices in cell order.
//	Ptn[0..n) - cell-end flags. Ptn[i]==0 means position i ends a cell;
//	            Ptn[i]==1 means the cell continues at i+1. Ptn[n-1] is
//	            always 0.
//
// A cell is a maximal run of Ptn==1 positions followed by one Ptn==0
// position. A Partition is discrete when every cell has size 1.
//
// Every method here is a small, total operation over that representation:
// Unit builds the one-cell start partition, Copy deep-copies, IsDiscrete
// tests for all-singleton cells, CellByIndex/CellCount/PartialCellCount
// and FirstIndexOfMaxCellSize answer cell-geometry questions that the
// refinement loop needs on every pass, IndexOfCellFrom/OverwriteCellFrom/
// AppendCellFrom keep a secondary worklist partition in sync with a
// primary one being refined, and GeneratePermutation derives the relabeling
// permutation that carries one discrete partition onto another.
//
// Errors:
//
//	ErrLengthMismatch - two partitions passed to a pairwise op have
//	                    different lengths.
package partition
