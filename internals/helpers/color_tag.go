// file: internals/helpers/color_tag.go
package helper

import "github.com/google/uuid"

// Palet tetap untuk penanda visual guru di grid mingguan.
var colorPalette = []string{
	"#1F77B4", // biru
	"#FF7F0E", // oranye
	"#2CA02C", // hijau
	"#D62728", // merah
	"#9467BD", // ungu
	"#8C564B", // coklat
	"#E377C2", // pink
	"#17BECF", // cyan
}

// ColorTag memetakan id ke salah satu warna palet secara deterministik.
func ColorTag(id uuid.UUID) string {
	var sum uint32
	for _, b := range id {
		sum = sum*31 + uint32(b)
	}
	return colorPalette[sum%uint32(len(colorPalette))]
}
