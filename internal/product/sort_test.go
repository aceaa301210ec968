package product_test

import (
	"cmp"
	"strings"

	"github.com/combisort/combisort/internal/product"
)

func (suite *Suite) TestSortIntegers() {
	r := suite.Require()

	combinations, err := product.Generate([][]int{{1}, {2, 3, 4}, {5, 6}, {7}})
	r.Nil(err)
	product.Sort(combinations, cmp.Compare[int])
	r.Equal([][]int{
		{1, 2, 5, 7},
		{1, 2, 6, 7},
		{1, 3, 5, 7},
		{1, 3, 6, 7},
		{1, 4, 5, 7},
		{1, 4, 6, 7},
	}, combinations)
}

func (suite *Suite) TestSortStrings() {
	r := suite.Require()

	combinations, err := product.Generate([][]string{
		{"alpha"},
		{"beta", "gamma", "delta"},
		{"zeta", "eta", "theta"},
	})
	r.Nil(err)
	r.Len(combinations, 9)
	product.Sort(combinations, strings.Compare)
	r.Equal([]string{"alpha", "beta", "eta"}, combinations[0])
	r.Equal([]string{"alpha", "beta", "theta"}, combinations[1])
	r.Equal([]string{"alpha", "beta", "zeta"}, combinations[2])
	r.Equal([]string{"alpha", "delta", "eta"}, combinations[3])
	r.Equal([]string{"alpha", "gamma", "zeta"}, combinations[8])
	r.True(product.IsSorted(combinations, strings.Compare))
}

func (suite *Suite) TestSortAdjacentPairs() {
	r := suite.Require()

	combinations, err := product.Generate([][]int{{9, -3, 4}, {0, 12}, {5, 5, -1}})
	r.Nil(err)
	r.False(product.IsSorted(combinations, cmp.Compare[int]))
	product.Sort(combinations, cmp.Compare[int])

	lexicographic := product.Lexicographic(cmp.Compare[int])
	for i := 1; i < len(combinations); i++ {
		r.LessOrEqual(lexicographic(combinations[i-1], combinations[i]), 0,
			"%v > %v", combinations[i-1], combinations[i])
	}
}

func (suite *Suite) TestSortIdempotent() {
	r := suite.Require()

	combinations, err := product.Generate([][]int{{3, 1}, {2, 3, 4}, {6, 5}})
	r.Nil(err)
	product.Sort(combinations, cmp.Compare[int])
	sorted := make([][]int, len(combinations))
	copy(sorted, combinations)

	product.Sort(combinations, cmp.Compare[int])
	r.Equal(sorted, combinations)
}

func (suite *Suite) TestSortStable() {
	r := suite.Require()

	// Duplicate values produce equivalent combinations.
	groups := [][]string{{"b", "a", "b"}}
	combinations, err := product.Generate(groups)
	r.Nil(err)
	first := combinations[0]
	product.Sort(combinations, strings.Compare)
	r.Equal([][]string{{"a"}, {"b"}, {"b"}}, combinations)
	r.Same(&first[0], &combinations[1][0])
}

func (suite *Suite) TestSortNoop() {
	r := suite.Require()

	var empty [][]int
	product.Sort(empty, cmp.Compare[int])
	r.Empty(empty)

	single := [][]int{{7}}
	product.Sort(single, cmp.Compare[int])
	r.Equal([][]int{{7}}, single)
	r.True(product.IsSorted(single, cmp.Compare[int]))
}

func (suite *Suite) TestSortReverse() {
	r := suite.Require()

	combinations, err := product.Generate([][]int{{1, 2}, {3, 4}})
	r.Nil(err)
	product.Sort(combinations, product.Reverse(cmp.Compare[int]))
	r.Equal([][]int{{2, 4}, {2, 3}, {1, 4}, {1, 3}}, combinations)
}

func (suite *Suite) TestLexicographicShortest() {
	r := suite.Require()

	lexicographic := product.Lexicographic(cmp.Compare[int])
	r.Equal(0, lexicographic([]int{1, 2}, []int{1, 2, 3}))
	r.Negative(lexicographic([]int{1, 2}, []int{1, 3, 0}))
	r.Positive(lexicographic([]int{2}, []int{1, 9}))
}
