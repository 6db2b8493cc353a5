package uc

import (
	"strings"
	"testing"
)

// benchSource is a small but complete program touching every statement.
const benchSource = `
int table[8] = {1, 2, 3, 5, 8, 13, 21, 34};

int sum(int v[], int n) {
	int total, i;
	total = 0;
	for (i = 0; i < n; i = i + 1)
		total = total + v[i];
	return total;
}

int main() {
	int n;
	read(n);
	assert n >= 0 && n <= 8;
	if (sum(table, n) % 2 == 0)
		print("even");
	else
		print("odd");
	while (n > 0) {
		n = n - 1;
		if (n == 3) break;
	}
	return 0;
}
`

// largeSource repeats the bench program's functions under distinct names.
var largeSource = func() string {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString(strings.NewReplacer("sum(", "sum"+string(rune('a'+i%26))+"(", "main(", "main"+string(rune('a'+i%26))+"(").Replace(benchSource))
	}
	return b.String()
}()

func BenchmarkTokenize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, errs := Tokenize(benchSource); errs.Len() != 0 {
			b.Fatal(errs)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("bench.uc", benchSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Large(b *testing.B) {
	b.SetBytes(int64(len(largeSource)))
	for i := 0; i < b.N; i++ {
		if _, err := Parse("large.uc", largeSource); err != nil {
			b.Fatal(err)
		}
	}
}
