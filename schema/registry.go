package schema

// Override declares a loop-local tightening of one element within a base
// segment schema: within the loop it is registered against, FieldName's
// declaration is replaced by Tighter, leaving every other loop's binding
// of that segment untouched. This is the mechanism behind the binding
// precedence rule "loop-local override wins over base schema" (spec
// §4.3) — a segment ID like STC or EB can carry a stricter code table or
// requiredness in one loop instance than its process-wide base schema
// declares.
type Override struct {
	FieldName string
	Tighter   Field
}

// Registry holds every segment schema known to a parser configuration,
// keyed by segment identifier, plus any loop-local overrides layered on
// top of specific (loop, segment) pairs. The zero value is not usable;
// build one with NewRegistry or Default.
type Registry struct {
	segments  map[string]Segment
	overrides map[string]map[string][]Override // loop ID -> segment ID -> overrides
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		segments:  make(map[string]Segment),
		overrides: make(map[string]map[string][]Override),
	}
}

// Register adds or replaces a segment schema.
func (r *Registry) Register(s Segment) *Registry {
	r.segments[s.ID] = s
	return r
}

// RegisterOverride declares a loop-local override: within loopID, segment
// segID binds with each listed Override's Tighter field merged onto the
// base schema in place of the field of the same name.
func (r *Registry) RegisterOverride(loopID, segID string, overrides ...Override) *Registry {
	if r.overrides[loopID] == nil {
		r.overrides[loopID] = make(map[string][]Override)
	}
	r.overrides[loopID][segID] = append(r.overrides[loopID][segID], overrides...)
	return r
}

// Lookup returns the base schema for a segment identifier, if declared,
// with no loop-local override applied. Callers binding within a known
// loop should prefer LookupInLoop.
func (r *Registry) Lookup(id string) (Segment, bool) {
	s, ok := r.segments[id]
	return s, ok
}

// LookupInLoop returns the schema for a segment identifier as bound
// within loopID: the base schema from Lookup with any overrides
// registered for (loopID, id) merged on top (spec §4.3's binding
// precedence — loop-local override, then base schema). With no override
// registered for that pair, this is identical to Lookup.
func (r *Registry) LookupInLoop(id, loopID string) (Segment, bool) {
	base, ok := r.segments[id]
	if !ok {
		return Segment{}, false
	}
	overrides := r.overrides[loopID][id]
	if len(overrides) == 0 {
		return base, true
	}
	fields := append([]Field{}, base.Fields...)
	for _, o := range overrides {
		for i, f := range fields {
			if f.Name == o.FieldName {
				fields[i] = o.Tighter
				break
			}
		}
	}
	return Segment{ID: base.ID, Fields: fields}, true
}

// Merge adds every segment schema and loop-local override from other into
// r. A segment schema replaces any schema r already declares for the same
// identifier; overrides are appended to those r already holds for the same
// (loop, segment) pair. Used to layer a
// transaction-set-specific registry (e.g. claim-specific SV1/SV2/CAS/HI
// shapes) on top of the base envelope registry.
func (r *Registry) Merge(other *Registry) *Registry {
	for id, s := range other.segments {
		r.segments[id] = s
	}
	for loopID, segs := range other.overrides {
		if r.overrides[loopID] == nil {
			r.overrides[loopID] = make(map[string][]Override)
		}
		for segID, ov := range segs {
			r.overrides[loopID][segID] = append(r.overrides[loopID][segID], ov...)
		}
	}
	return r
}

// Default returns the base registry shared by every transaction set: the
// envelope segments (ISA/GS/ST/SE/GE/IEA), BHT, the HL segment that
// drives loop inference, and the common NM1, N3, N4, DMG, REF, DTP, PER
// and TRN segments. Transaction-set-specific registries (see
// transactions package) layer additional segment schemas on top via Merge.
func Default() *Registry {
	r := NewRegistry()
	r.Register(isaSchema())
	r.Register(gsSchema())
	r.Register(stSchema())
	r.Register(seSchema())
	r.Register(geSchema())
	r.Register(ieaSchema())
	r.Register(bhtSchema())
	r.Register(hlSchema())
	r.Register(nm1Schema())
	r.Register(n3Schema())
	r.Register(n4Schema())
	r.Register(dmgSchema())
	r.Register(refSchema())
	r.Register(dtpSchema())
	r.Register(perSchema())
	r.Register(trnSchema())
	return r
}

func isaSchema() Segment {
	return NewSegment("ISA",
		At(1, "ISA01_AuthInfoQualifier").OfType(Identifier).Required().Length(2, 2).Build(),
		At(2, "ISA02_AuthInfo").OfType(String).Required().Length(10, 10).Build(),
		At(3, "ISA03_SecurityInfoQualifier").OfType(Identifier).Required().Length(2, 2).Build(),
		At(4, "ISA04_SecurityInfo").OfType(String).Required().Length(10, 10).Build(),
		At(5, "ISA05_SenderIDQualifier").OfType(Identifier).Required().Length(2, 2).Build(),
		At(6, "ISA06_SenderID").OfType(String).Required().Length(15, 15).Build(),
		At(7, "ISA07_ReceiverIDQualifier").OfType(Identifier).Required().Length(2, 2).Build(),
		At(8, "ISA08_ReceiverID").OfType(String).Required().Length(15, 15).Build(),
		// ISA09 is a 2-digit-year YYMMDD date, unlike every other date
		// element in 005010 (CCYYMMDD) — Pattern catches its digit shape
		// without reusing the Date type's 8-digit CCYYMMDD check.
		At(9, "ISA09_Date").OfType(String).Required().Length(6, 6).Pattern(`^\d{6}$`).Build(),
		At(10, "ISA10_Time").OfType(Time).Required().Length(4, 4).Build(),
		At(11, "ISA11_RepetitionSeparator").OfType(String).Required().Length(1, 1).Build(),
		At(12, "ISA12_Version").OfType(Identifier).Required().Codes("00501").Build(),
		At(13, "ISA13_ControlNumber").OfType(Numeric).Required().Length(9, 9).Build(),
		At(14, "ISA14_AckRequested").OfType(Identifier).Required().Codes("0", "1").Build(),
		At(15, "ISA15_UsageIndicator").OfType(Identifier).Required().Codes("P", "T").Build(),
		At(16, "ISA16_ComponentSeparator").OfType(String).Required().Length(1, 1).Build(),
	)
}

func gsSchema() Segment {
	return NewSegment("GS",
		At(1, "GS01_FunctionalIDCode").OfType(Identifier).Required().Build(),
		At(2, "GS02_SenderCode").OfType(String).Required().Length(2, 15).Build(),
		At(3, "GS03_ReceiverCode").OfType(String).Required().Length(2, 15).Build(),
		At(4, "GS04_Date").OfType(Date).Required().Build(),
		At(5, "GS05_Time").OfType(Time).Required().Build(),
		At(6, "GS06_ControlNumber").OfType(Numeric).Required().Build(),
		At(7, "GS07_ResponsibleAgency").OfType(Identifier).Required().Codes("X").Build(),
		At(8, "GS08_VersionReleaseCode").OfType(Identifier).Required().Build(),
	)
}

func stSchema() Segment {
	return NewSegment("ST",
		At(1, "ST01_TransactionSetCode").OfType(Identifier).Required().Length(3, 3).Build(),
		At(2, "ST02_ControlNumber").OfType(String).Required().Length(4, 9).Build(),
		At(3, "ST03_ImplementationRef").OfType(String).Build(),
	)
}

func seSchema() Segment {
	return NewSegment("SE",
		At(1, "SE01_SegmentCount").OfType(Numeric).Required().Build(),
		At(2, "SE02_ControlNumber").OfType(String).Required().Length(4, 9).Build(),
	)
}

func geSchema() Segment {
	return NewSegment("GE",
		At(1, "GE01_NumberOfTransactionSets").OfType(Numeric).Required().Build(),
		At(2, "GE02_ControlNumber").OfType(Numeric).Required().Build(),
	)
}

func ieaSchema() Segment {
	return NewSegment("IEA",
		At(1, "IEA01_NumberOfGroups").OfType(Numeric).Required().Build(),
		At(2, "IEA02_ControlNumber").OfType(Numeric).Required().Length(9, 9).Build(),
	)
}

func bhtSchema() Segment {
	return NewSegment("BHT",
		At(1, "BHT01_HierarchicalStructureCode").OfType(Identifier).Required().Build(),
		At(2, "BHT02_PurposeCode").OfType(Identifier).Required().Build(),
		At(3, "BHT03_ReferenceID").OfType(String).Build(),
		At(4, "BHT04_Date").OfType(Date).Build(),
		At(5, "BHT05_Time").OfType(Time).Build(),
		At(6, "BHT06_TransactionTypeCode").OfType(Identifier).Build(),
	)
}

func hlSchema() Segment {
	return NewSegment("HL",
		At(1, "HL01_ID").OfType(Numeric).Required().Build(),
		At(2, "HL02_ParentID").OfType(Numeric).Build(),
		At(3, "HL03_LevelCode").OfType(Identifier).Required().
			Codes("20", "21", "22", "23").Build(),
		At(4, "HL04_HasChildren").OfType(Identifier).Codes("0", "1").Build(),
	)
}

func nm1Schema() Segment {
	return NewSegment("NM1",
		At(1, "NM101_EntityIDCode").OfType(Identifier).Required().Build(),
		At(2, "NM102_EntityTypeQualifier").OfType(Identifier).Required().Codes("1", "2").Build(),
		At(3, "NM103_LastOrOrgName").OfType(String).Length(1, 60).Build(),
		At(4, "NM104_FirstName").OfType(String).Length(1, 35).Build(),
		At(5, "NM105_MiddleName").OfType(String).Length(1, 25).Build(),
		At(7, "NM107_NameSuffix").OfType(String).Build(),
		At(8, "NM108_IDCodeQualifier").OfType(Identifier).Build(),
		At(9, "NM109_IDCode").OfType(String).Length(2, 80).Build(),
	)
}

func n3Schema() Segment {
	return NewSegment("N3",
		At(1, "N301_AddressLine1").OfType(String).Required().Length(1, 55).Build(),
		At(2, "N302_AddressLine2").OfType(String).Length(1, 55).Build(),
	)
}

func n4Schema() Segment {
	return NewSegment("N4",
		At(1, "N401_City").OfType(String).Length(2, 30).Build(),
		At(2, "N402_State").OfType(Identifier).Length(2, 2).Build(),
		At(3, "N403_PostalCode").OfType(Identifier).Length(3, 15).Build(),
	)
}

func dmgSchema() Segment {
	return NewSegment("DMG",
		At(1, "DMG01_DateFormatQualifier").OfType(Identifier).Codes("D8").Build(),
		At(2, "DMG02_BirthDate").OfType(Date).Build(),
		At(3, "DMG03_Gender").OfType(Identifier).Codes("F", "M", "U").Build(),
	)
}

func refSchema() Segment {
	return NewSegment("REF",
		At(1, "REF01_Qualifier").OfType(Identifier).Required().Build(),
		At(2, "REF02_Value").OfType(String).Required().Length(1, 50).Build(),
	)
}

func dtpSchema() Segment {
	return NewSegment("DTP",
		At(1, "DTP01_Qualifier").OfType(Identifier).Required().Build(),
		At(2, "DTP02_FormatQualifier").OfType(Identifier).Required().
			Codes("D8", "RD8").Build(),
		At(3, "DTP03_Date").OfType(String).Required().Build(),
	)
}

func perSchema() Segment {
	return NewSegment("PER",
		At(1, "PER01_ContactFunctionCode").OfType(Identifier).Required().Build(),
		At(2, "PER02_Name").OfType(String).Build(),
		At(3, "PER03_CommQualifier").OfType(Identifier).Build(),
		At(4, "PER04_CommNumber").OfType(String).Build(),
	)
}

func trnSchema() Segment {
	return NewSegment("TRN",
		At(1, "TRN01_TraceTypeCode").OfType(Identifier).Required().Build(),
		At(2, "TRN02_TraceNumber").OfType(String).Required().Build(),
		At(3, "TRN03_OriginatingCompanyID").OfType(String).Build(),
	)
}
