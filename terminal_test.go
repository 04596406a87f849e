package goresults

import (
	"testing"

	"github.com/matryer/is"
)

func TestReduce(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 2, 3, 4, 5})

	summer := func(elem int, index uint64, acc int) int {
		is.Equal(index, uint64(elem-1))

		return acc + elem
	}

	result := Reduce(ints, 0, summer)

	is.Equal(result, 15)
}

func TestReduceSlice(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 2, 3})

	is.Equal(ReduceSlice(ints), []int{1, 2, 3})
}

func TestEach(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 2, 3, 4, 5})

	seen := []int{}

	Each(ints, func(elem int, index uint64) bool {
		is.Equal(index, uint64(elem-1))

		seen = append(seen, elem)

		return true
	})

	is.Equal(seen, []int{1, 2, 3, 4, 5})
}

func TestEach_Stop(t *testing.T) {
	is := is.New(t)

	pulls := 0

	next := Produce([]int{1, 2, 3, 4, 5})

	ints := ProducerFunc[int](func() (int, bool) {
		pulls++
		return next()
	})

	seen := []int{}

	Each(ints, func(elem int, _ uint64) bool {
		seen = append(seen, elem)

		return elem < 3
	})

	is.Equal(seen, []int{1, 2, 3})
	is.Equal(pulls, 3)
}

func TestAnyMatch(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 3, 4, 5})

	is.True(AnyMatch(ints, even))
}

func TestAnyMatch_NoMatch(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 3, 5})

	is.True(!AnyMatch(ints, even))
}

func TestAnyMatch_StopsPulling(t *testing.T) {
	is := is.New(t)

	pulls := 0

	next := Produce([]int{1, 2, 3, 4, 5})

	ints := ProducerFunc[int](func() (int, bool) {
		pulls++
		return next()
	})

	is.True(AnyMatch(ints, even))
	is.Equal(pulls, 2)
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{2, 4, 6})

	is.True(AllMatch(ints, even))
}

func TestAllMatch_NoMatch(t *testing.T) {
	is := is.New(t)

	pulls := 0

	next := Produce([]int{2, 3, 4})

	ints := ProducerFunc[int](func() (int, bool) {
		pulls++
		return next()
	})

	is.True(!AllMatch(ints, even))
	is.Equal(pulls, 2)
}

func TestAllMatch_Empty(t *testing.T) {
	is := is.New(t)

	is.True(AllMatch(Produce[int](), even))
}

func TestCount(t *testing.T) {
	is := is.New(t)

	strs := Produce([]string{"foo", "bar", "baz"})

	is.Equal(Count(strs), uint64(3))
}

func TestCollectResults(t *testing.T) {
	is := is.New(t)

	results := ProduceResults(Value(1), Value(2), Value(3))

	values, err := CollectResults(results)

	is.NoErr(err)
	is.Equal(values, []int{1, 2, 3})
}

func TestCollectResults_Failure(t *testing.T) {
	is := is.New(t)

	pulls := 0

	next := ProduceResults(Value(1), Value(2), Failure[int](errTest), Value(3))

	results := ProducerFunc[Result[int]](func() (Result[int], bool) {
		pulls++
		return next()
	})

	values, err := CollectResults(results)

	is.Equal(err, errTest)
	is.Equal(values, []int{1, 2})
	is.Equal(pulls, 3)
}
