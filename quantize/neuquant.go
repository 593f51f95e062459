package quantize

/*
NeuQuant Neural-Net Quantization Algorithm
------------------------------------------

Copyright (c) 1994 Anthony Dekker

NEUQUANT Neural-Net quantization algorithm by Anthony Dekker, 1994.
See "Kohonen neural networks for optimal colour quantization"
in "Network: Computation in Neural Systems" Vol. 5 (1994) pp 351-367.
for a discussion of the algorithm.
See also http://members.ozemail.com.au/~dekker/NEUQUANT.HTML

Any party obtaining a copy of these files from the author, directly or
indirectly, is granted, free of charge, a full and unrestricted irrevocable,
world-wide, paid up, royalty-free, nonexclusive right and license to deal
in this software and documentation files (the "Software"), including without
limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
and/or sell copies of the Software, and to permit persons who receive
copies from any such party to do so, with the only requirement being
that this copyright notice remain intact.

(Go port 2024)
*/

// Adapted for an arbitrary target palette size: the teacher's port hard-codes
// a 256-neuron network via package constants; here netsize and everything
// derived from it are per-instance fields computed in Quantize from the
// caller's maxColors, so a small requested palette doesn't pay for 256
// neurons it will never use.

import "github.com/ncgif/gifed"

const (
	netbiasshift    = 4
	intbiasshift    = 16
	intbias         = 1 << intbiasshift
	gammashift      = 10
	gamma           = 1 << gammashift
	betashift       = 10
	beta            = intbias >> betashift
	betagamma       = intbias << (gammashift - betashift)
	radiusbiasshift = 6
	radiusbias      = 1 << radiusbiasshift
	radiusdec       = 30
	alphabiasshift  = 10
	initalpha       = 1 << alphabiasshift
	radbiasshift    = 8
	radbias         = 1 << radbiasshift
	alpharadbshift  = alphabiasshift + radbiasshift
	alpharadbias    = 1 << alpharadbshift
	prime1          = 499
	prime2          = 491
	prime3          = 487
	prime4          = 503
	minpicturebytes = 3 * prime4
	ncycles         = 100
)

// NeuQuant is the default Quantizer implementation.
type NeuQuant struct {
	netsize    int
	maxnetpos  int
	initrad    int
	initradius int

	network  [][]int32 // [netsize][4]: r, g, b, original index
	netindex []int32   // [256]
	bias     []int32
	freq     []int32
	radpower []int32

	samplefac int
}

// NewNeuQuant creates a quantizer sampling at samplefac (1..30, lower is
// higher quality but slower).
func NewNeuQuant(samplefac int) *NeuQuant {
	if samplefac < 1 {
		samplefac = 10
	}
	return &NeuQuant{samplefac: samplefac}
}

// Quantize implements Quantizer.
func (nq *NeuQuant) Quantize(pixels []byte, maxColors int) gifed.Palette {
	if maxColors < 1 {
		maxColors = 1
	}
	if maxColors > gifed.MaxPaletteColors {
		maxColors = gifed.MaxPaletteColors
	}
	nq.netsize = maxColors
	nq.maxnetpos = nq.netsize - 1
	nq.initrad = nq.netsize >> 3
	if nq.initrad < 1 {
		nq.initrad = 1
	}
	nq.initradius = nq.initrad * radiusbias

	nq.network = make([][]int32, nq.netsize)
	nq.netindex = make([]int32, 256)
	nq.bias = make([]int32, nq.netsize)
	nq.freq = make([]int32, nq.netsize)
	nq.radpower = make([]int32, nq.initrad)

	nq.init()
	nq.learn(pixels)
	nq.unbiasnet()
	nq.inxbuild()

	colormap := make(gifed.Palette, nq.netsize)
	index := make([]int, nq.netsize)
	for i := 0; i < nq.netsize; i++ {
		index[nq.network[i][3]] = i
	}
	for i := 0; i < nq.netsize; i++ {
		j := index[i]
		colormap[i] = gifed.Color{
			R: byte(nq.network[j][0]),
			G: byte(nq.network[j][1]),
			B: byte(nq.network[j][2]),
		}
	}
	return colormap
}

// Index implements Quantizer.
func (nq *NeuQuant) Index(r, g, b byte) int {
	return nq.inxsearch(int32(r), int32(g), int32(b))
}

func (nq *NeuQuant) init() {
	for i := 0; i < nq.netsize; i++ {
		v := int32((i << (netbiasshift + 8)) / nq.netsize)
		nq.network[i] = []int32{v, v, v, 0}
		nq.freq[i] = intbias / int32(nq.netsize)
		nq.bias[i] = 0
	}
}

func (nq *NeuQuant) unbiasnet() {
	for i := 0; i < nq.netsize; i++ {
		nq.network[i][0] >>= netbiasshift
		nq.network[i][1] >>= netbiasshift
		nq.network[i][2] >>= netbiasshift
		nq.network[i][3] = int32(i)
	}
}

func (nq *NeuQuant) altersingle(alpha, i int32, b, g, r int32) {
	nq.network[i][0] -= (alpha * (nq.network[i][0] - b)) / initalpha
	nq.network[i][1] -= (alpha * (nq.network[i][1] - g)) / initalpha
	nq.network[i][2] -= (alpha * (nq.network[i][2] - r)) / initalpha
}

func (nq *NeuQuant) alterneigh(radius int, i int, b, g, r int32) {
	lo := absInt(i - radius)
	hi := i + radius
	if hi > nq.netsize {
		hi = nq.netsize
	}

	j := i + 1
	k := i - 1
	m := 1

	for j < hi || k > lo {
		a := nq.radpower[m]
		m++

		if j < hi {
			p := nq.network[j]
			p[0] -= (a * (p[0] - b)) / alpharadbias
			p[1] -= (a * (p[1] - g)) / alpharadbias
			p[2] -= (a * (p[2] - r)) / alpharadbias
			j++
		}
		if k > lo {
			p := nq.network[k]
			p[0] -= (a * (p[0] - b)) / alpharadbias
			p[1] -= (a * (p[1] - g)) / alpharadbias
			p[2] -= (a * (p[2] - r)) / alpharadbias
			k--
		}
	}
}

func (nq *NeuQuant) contest(b, g, r int32) int {
	bestd := int32(0x7FFFFFFF)
	bestbiasd := bestd
	bestpos := -1
	bestbiaspos := bestpos

	for i := 0; i < nq.netsize; i++ {
		n := nq.network[i]
		dist := absInt32(n[0]-b) + absInt32(n[1]-g) + absInt32(n[2]-r)
		if dist < bestd {
			bestd = dist
			bestpos = i
		}

		biasdist := dist - (nq.bias[i] >> (intbiasshift - netbiasshift))
		if biasdist < bestbiasd {
			bestbiasd = biasdist
			bestbiaspos = i
		}

		betafreq := nq.freq[i] >> betashift
		nq.freq[i] -= betafreq
		nq.bias[i] += betafreq << gammashift
	}

	nq.freq[bestpos] += beta
	nq.bias[bestpos] -= betagamma
	return bestbiaspos
}

func (nq *NeuQuant) learn(pixels []byte) {
	lengthcount := len(pixels)
	alphadec := int32(30 + ((nq.samplefac - 1) / 3))
	samplepixels := lengthcount / (3 * nq.samplefac)
	if samplepixels < 1 {
		samplepixels = 1
	}
	delta := samplepixels / ncycles
	if delta == 0 {
		delta = 1
	}

	alpha := int32(initalpha)
	radius := int32(nq.initradius)

	rad := int(radius >> radiusbiasshift)
	if rad <= 1 {
		rad = 0
	}
	for i := 0; i < rad; i++ {
		nq.radpower[i] = alpha * ((int32(rad*rad-i*i) * radbias) / int32(rad*rad))
	}

	var step int
	switch {
	case lengthcount < minpicturebytes:
		nq.samplefac = 1
		step = 3
	case lengthcount%prime1 != 0:
		step = 3 * prime1
	case lengthcount%prime2 != 0:
		step = 3 * prime2
	case lengthcount%prime3 != 0:
		step = 3 * prime3
	default:
		step = 3 * prime4
	}

	pix := 0
	i := 0
	for i < samplepixels {
		b := (int32(pixels[pix]) & 0xff) << netbiasshift
		g := (int32(pixels[pix+1]) & 0xff) << netbiasshift
		r := (int32(pixels[pix+2]) & 0xff) << netbiasshift

		j := nq.contest(b, g, r)
		nq.altersingle(alpha, int32(j), b, g, r)
		if rad != 0 {
			nq.alterneigh(rad, j, b, g, r)
		}

		pix += step
		if pix >= lengthcount {
			pix -= lengthcount
		}
		i++

		if i%delta == 0 {
			alpha -= alpha / alphadec
			radius -= radius / radiusdec
			rad = int(radius >> radiusbiasshift)
			if rad <= 1 {
				rad = 0
			}
			for j := 0; j < rad; j++ {
				nq.radpower[j] = alpha * ((int32(rad*rad-j*j) * radbias) / int32(rad*rad))
			}
		}
	}
}

func (nq *NeuQuant) inxbuild() {
	previouscol := int32(0)
	startpos := 0

	for i := 0; i < nq.netsize; i++ {
		p := nq.network[i]
		smallpos := i
		smallval := p[1]

		for j := i + 1; j < nq.netsize; j++ {
			q := nq.network[j]
			if q[1] < smallval {
				smallpos = j
				smallval = q[1]
			}
		}

		if i != smallpos {
			nq.network[i], nq.network[smallpos] = nq.network[smallpos], nq.network[i]
			p = nq.network[i]
		}

		if smallval != previouscol {
			nq.netindex[previouscol] = int32((startpos + i) >> 1)
			for j := previouscol + 1; j < smallval; j++ {
				nq.netindex[j] = int32(i)
			}
			previouscol = smallval
			startpos = i
		}
	}

	nq.netindex[previouscol] = int32((startpos + nq.maxnetpos) >> 1)
	for j := previouscol + 1; j < 256; j++ {
		nq.netindex[j] = int32(nq.maxnetpos)
	}
}

func (nq *NeuQuant) inxsearch(b, g, r int32) int {
	bestd := int32(1000)
	best := -1

	i := int(nq.netindex[g])
	j := i - 1

	for i < nq.netsize || j >= 0 {
		if i < nq.netsize {
			p := nq.network[i]
			dist := p[1] - g
			if dist >= bestd {
				i = nq.netsize
			} else {
				i++
				if dist < 0 {
					dist = -dist
				}
				a := p[0] - b
				if a < 0 {
					a = -a
				}
				dist += a
				if dist < bestd {
					a = p[2] - r
					if a < 0 {
						a = -a
					}
					dist += a
					if dist < bestd {
						bestd = dist
						best = int(p[3])
					}
				}
			}
		}

		if j >= 0 {
			p := nq.network[j]
			dist := g - p[1]
			if dist >= bestd {
				j = -1
			} else {
				j--
				if dist < 0 {
					dist = -dist
				}
				a := p[0] - b
				if a < 0 {
					a = -a
				}
				dist += a
				if dist < bestd {
					a = p[2] - r
					if a < 0 {
						a = -a
					}
					dist += a
					if dist < bestd {
						bestd = dist
						best = int(p[3])
					}
				}
			}
		}
	}

	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
