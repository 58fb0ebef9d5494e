package jacobi

// CopolarN is the trio of functions copolar with pole n: the principal
// functions sn, cn, dn. Every other Jacobi function is a ratio of these.
type CopolarN struct {
	Sn float64
	Cn float64
	Dn float64
}

// CopolarS is the trio copolar with pole s: cs, ds, ns.
type CopolarS struct {
	Cs float64
	Ds float64
	Ns float64
}

// CopolarC is the trio copolar with pole c: dc, nc, sc.
type CopolarC struct {
	Dc float64
	Nc float64
	Sc float64
}

// CopolarD is the trio copolar with pole d: nd, sd, cd.
type CopolarD struct {
	Nd float64
	Sd float64
	Cd float64
}

func copolarSFromN(n CopolarN) CopolarS {
	ns := 1 / n.Sn
	return CopolarS{Cs: ns * n.Cn, Ds: ns * n.Dn, Ns: ns}
}

func copolarCFromN(n CopolarN) CopolarC {
	nc := 1 / n.Cn
	return CopolarC{Dc: nc * n.Dn, Nc: nc, Sc: nc * n.Sn}
}

func copolarDFromN(n CopolarN) CopolarD {
	nd := 1 / n.Dn
	return CopolarD{Nd: nd, Sd: nd * n.Sn, Cd: nd * n.Cn}
}
