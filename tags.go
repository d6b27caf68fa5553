// Copyright 2024 <climacell.com>. All rights reserved.
// TIFF tag and field-type tables

package tiff

// TagType identifies the semantic meaning of an IFD entry.
type TagType uint16

// Baseline and extension tags, TIFF 6.0 unless noted.
const (
	TagType_NewSubfileType TagType = 0x00fe
	TagType_SubfileType    TagType = 0x00ff

	TagType_ImageWidth                TagType = 0x0100
	TagType_ImageLength               TagType = 0x0101
	TagType_BitsPerSample             TagType = 0x0102
	TagType_Compression               TagType = 0x0103
	TagType_PhotometricInterpretation TagType = 0x0106
	TagType_Thresholding              TagType = 0x0107

	TagType_CellWidth        TagType = 0x0108
	TagType_CellLength       TagType = 0x0109
	TagType_FillOrder        TagType = 0x010a
	TagType_DocumentName     TagType = 0x010d
	TagType_ImageDescription TagType = 0x010e
	TagType_Make             TagType = 0x010f

	TagType_Model           TagType = 0x0110
	TagType_StripOffsets    TagType = 0x0111
	TagType_Orientation     TagType = 0x0112
	TagType_SamplesPerPixel TagType = 0x0115
	TagType_RowsPerStrip    TagType = 0x0116
	TagType_StripByteCounts TagType = 0x0117

	TagType_MinSampleValue      TagType = 0x0118
	TagType_MaxSampleValue      TagType = 0x0119
	TagType_XResolution         TagType = 0x011a
	TagType_YResolution         TagType = 0x011b
	TagType_PlanarConfiguration TagType = 0x011c
	TagType_PageName            TagType = 0x011d
	TagType_XPosition           TagType = 0x011e
	TagType_YPosition           TagType = 0x011f

	TagType_FreeOffsets       TagType = 0x0120
	TagType_FreeByteCounts    TagType = 0x0121
	TagType_GrayResponseUnit  TagType = 0x0122
	TagType_GrayResponseCurve TagType = 0x0123
	TagType_T4Options         TagType = 0x0124
	TagType_T6Options         TagType = 0x0125

	TagType_ResolutionUnit   TagType = 0x0128
	TagType_PageNumber       TagType = 0x0129
	TagType_TransferFunction TagType = 0x012d

	TagType_Software TagType = 0x0131
	TagType_DateTime TagType = 0x0132

	TagType_Artist                TagType = 0x013b
	TagType_HostComputer          TagType = 0x013c
	TagType_Predictor             TagType = 0x013d
	TagType_WhitePoint            TagType = 0x013e
	TagType_PrimaryChromaticities TagType = 0x013f

	TagType_ColorMap               TagType = 0x0140
	TagType_HalftoneHints          TagType = 0x0141
	TagType_TileWidth              TagType = 0x0142
	TagType_TileLength             TagType = 0x0143
	TagType_TileOffsets            TagType = 0x0144
	TagType_TileByteCounts         TagType = 0x0145
	TagType_BadFaxLines            TagType = 0x0146
	TagType_CleanFaxData           TagType = 0x0147
	TagType_ConsecutiveBadFaxLines TagType = 0x0148

	TagType_SubIFDs      TagType = 0x014a
	TagType_InkSet       TagType = 0x014c
	TagType_InkNames     TagType = 0x014d
	TagType_NumberOfInks TagType = 0x014e

	TagType_DotRange        TagType = 0x0150
	TagType_TargetPrinter   TagType = 0x0151
	TagType_ExtraSamples    TagType = 0x0152
	TagType_SampleFormat    TagType = 0x0153
	TagType_SMinSampleValue TagType = 0x0154
	TagType_SMaxSampleValue TagType = 0x0155
	TagType_TransferRange   TagType = 0x0156
	TagType_ClipPath        TagType = 0x0157

	TagType_XClipPathUnits TagType = 0x0158
	TagType_YClipPathUnits TagType = 0x0159
	TagType_Indexed        TagType = 0x015a
	TagType_JPEGTables     TagType = 0x015b
	TagType_OPIProxy       TagType = 0x015f

	TagType_GlobalParametersIFD TagType = 0x0190
	TagType_ProfileType         TagType = 0x0191
	TagType_FaxProfile          TagType = 0x0192
	TagType_CodingMethods       TagType = 0x0193
	TagType_VersionYear         TagType = 0x0194
	TagType_ModeNumber          TagType = 0x0195

	TagType_Decode            TagType = 0x01b1
	TagType_DefaultImageColor TagType = 0x01b2

	TagType_JPEGProc                    TagType = 0x0200
	TagType_JPEGInterchangeFormat       TagType = 0x0201
	TagType_JPEGInterchangeFormatLength TagType = 0x0202
	TagType_JPEGRestartInterval         TagType = 0x0203
	TagType_JPEGLosslessPredictors      TagType = 0x0205
	TagType_JPEGPointTransforms         TagType = 0x0206
	TagType_JPEGQTables                 TagType = 0x0207
	TagType_JPEGDCTables                TagType = 0x0208
	TagType_JPEGACTables                TagType = 0x0209

	TagType_YCbCrCoefficients   TagType = 0x0211
	TagType_YCbCrSubSampling    TagType = 0x0212
	TagType_YCbCrPositioning    TagType = 0x0213
	TagType_ReferenceBlackWhite TagType = 0x0214

	TagType_StripRowCounts TagType = 0x022f
	TagType_XMP            TagType = 0x02bc
	TagType_ImageID        TagType = 0x800d
	TagType_Copyright      TagType = 0x8298
	TagType_ImageLayer     TagType = 0x87ac

	// Private tags
	TagType_WangAnnotation TagType = 0x80a4

	TagType_MDFileTag    TagType = 0x82a5
	TagType_MDScalePixel TagType = 0x82a6
	TagType_MDColorTable TagType = 0x82a7
	TagType_MDLabName    TagType = 0x82a8
	TagType_MDSampleInfo TagType = 0x82a9
	TagType_MDPrepDate   TagType = 0x82aa
	TagType_MDPrepTime   TagType = 0x82ab
	TagType_MDFileUnits  TagType = 0x82ac

	TagType_ModelPixelScaleTag TagType = 0x830e

	TagType_IPTC TagType = 0x83bb

	TagType_INGRPacketDataTag TagType = 0x847e
	TagType_INGRFlagRegisters TagType = 0x847f

	TagType_IrasBTransformationMatrix TagType = 0x8480
	TagType_ModelTiepointTag          TagType = 0x8482
	TagType_ModelTransformationTag    TagType = 0x85d8

	TagType_Photoshop TagType = 0x8649

	TagType_ExifIFD TagType = 0x8769

	TagType_ICCProfile TagType = 0x8773

	TagType_GeoKeyDirectoryTag TagType = 0x87af
	TagType_GeoDoubleParamsTag TagType = 0x87b0
	TagType_GeoAsciiParamsTag  TagType = 0x87b1

	TagType_GPSIFD TagType = 0x8825

	TagType_HylaFAXFaxRecvParams  TagType = 0x885c
	TagType_HylaFAXFaxSubAddress  TagType = 0x885d
	TagType_HylaFAXFaxRecvTime    TagType = 0x885e
	TagType_ImageSourceData       TagType = 0x935c
	TagType_InteroperabilityIFD   TagType = 0xa005
	TagType_GDALMetadata          TagType = 0xa480
	TagType_GDALNoData            TagType = 0xa481
	TagType_OceScanjobDescription TagType = 0xc427
	TagType_OceApplicationSelector      TagType = 0xc428
	TagType_OceIdentificationNumber     TagType = 0xc429
	TagType_OceImageLogicCharacteristic TagType = 0xc42a

	TagType_DNGVersion           TagType = 0xc612
	TagType_DNGBackwardVersion   TagType = 0xc613
	TagType_UniqueCameraModel    TagType = 0xc614
	TagType_LocalizedCameraModel TagType = 0xc615
	TagType_CFAPlaneColor        TagType = 0xc616
	TagType_CFALayout            TagType = 0xc617

	TagType_LinearizationTable  TagType = 0xc618
	TagType_BlackLevelRepeatDim TagType = 0xc619
	TagType_BlackLevel          TagType = 0xc61a
	TagType_BlackLevelDeltaH    TagType = 0xc61b
	TagType_BlackLevelDeltaV    TagType = 0xc61c
	TagType_WhiteLevel          TagType = 0xc61d
	TagType_DefaultScale        TagType = 0xc61e
	TagType_DefaultCropOrigin   TagType = 0xc61f

	TagType_DefaultCropSize    TagType = 0xc620
	TagType_ColorMatrix1       TagType = 0xc621
	TagType_ColorMatrix2       TagType = 0xc622
	TagType_CameraCalibration1 TagType = 0xc623
	TagType_CameraCalibration2 TagType = 0xc624
	TagType_ReductionMatrix1   TagType = 0xc625
	TagType_ReductionMatrix2   TagType = 0xc626
	TagType_AnalogBalance      TagType = 0xc627

	TagType_AsShotNeutral        TagType = 0xc628
	TagType_AsShotWhiteXY        TagType = 0xc629
	TagType_BaselineExposure     TagType = 0xc62a
	TagType_BaselineNoise        TagType = 0xc62b
	TagType_BaselineSharpness    TagType = 0xc62c
	TagType_BayerGreenSplit      TagType = 0xc62d
	TagType_LinearResponseLimit  TagType = 0xc62e
	TagType_CameraSerialNumber   TagType = 0xc62f

	TagType_LensInfo           TagType = 0xc630
	TagType_ChromaBlurRadius   TagType = 0xc631
	TagType_AntiAliasStrength  TagType = 0xc632
	TagType_DNGPrivateData     TagType = 0xc634
	TagType_MakerNoteSafety    TagType = 0xc635

	TagType_CalibrationIlluminant1 TagType = 0xc65a
	TagType_CalibrationIlluminant2 TagType = 0xc65b
	TagType_BestQualityScale       TagType = 0xc65c

	TagType_AliasLayerMetadata TagType = 0xc660
)

// TagNames maps tags to their spec names for diagnostics output.
var TagNames = map[TagType]string{
	TagType_NewSubfileType:              "NewSubfileType",
	TagType_SubfileType:                 "SubfileType",
	TagType_ImageWidth:                  "ImageWidth",
	TagType_ImageLength:                 "ImageLength",
	TagType_BitsPerSample:               "BitsPerSample",
	TagType_Compression:                 "Compression",
	TagType_PhotometricInterpretation:   "PhotometricInterpretation",
	TagType_Thresholding:                "Thresholding",
	TagType_CellWidth:                   "CellWidth",
	TagType_CellLength:                  "CellLength",
	TagType_FillOrder:                   "FillOrder",
	TagType_DocumentName:                "DocumentName",
	TagType_ImageDescription:            "ImageDescription",
	TagType_Make:                        "Make",
	TagType_Model:                       "Model",
	TagType_StripOffsets:                "StripOffsets",
	TagType_Orientation:                 "Orientation",
	TagType_SamplesPerPixel:             "SamplesPerPixel",
	TagType_RowsPerStrip:                "RowsPerStrip",
	TagType_StripByteCounts:             "StripByteCounts",
	TagType_MinSampleValue:              "MinSampleValue",
	TagType_MaxSampleValue:              "MaxSampleValue",
	TagType_XResolution:                 "XResolution",
	TagType_YResolution:                 "YResolution",
	TagType_PlanarConfiguration:         "PlanarConfiguration",
	TagType_PageName:                    "PageName",
	TagType_XPosition:                   "XPosition",
	TagType_YPosition:                   "YPosition",
	TagType_FreeOffsets:                 "FreeOffsets",
	TagType_FreeByteCounts:              "FreeByteCounts",
	TagType_GrayResponseUnit:            "GrayResponseUnit",
	TagType_GrayResponseCurve:           "GrayResponseCurve",
	TagType_T4Options:                   "T4Options",
	TagType_T6Options:                   "T6Options",
	TagType_ResolutionUnit:              "ResolutionUnit",
	TagType_PageNumber:                  "PageNumber",
	TagType_TransferFunction:            "TransferFunction",
	TagType_Software:                    "Software",
	TagType_DateTime:                    "DateTime",
	TagType_Artist:                      "Artist",
	TagType_HostComputer:                "HostComputer",
	TagType_Predictor:                   "Predictor",
	TagType_WhitePoint:                  "WhitePoint",
	TagType_PrimaryChromaticities:       "PrimaryChromaticities",
	TagType_ColorMap:                    "ColorMap",
	TagType_HalftoneHints:               "HalftoneHints",
	TagType_TileWidth:                   "TileWidth",
	TagType_TileLength:                  "TileLength",
	TagType_TileOffsets:                 "TileOffsets",
	TagType_TileByteCounts:              "TileByteCounts",
	TagType_BadFaxLines:                 "BadFaxLines",
	TagType_CleanFaxData:                "CleanFaxData",
	TagType_ConsecutiveBadFaxLines:      "ConsecutiveBadFaxLines",
	TagType_SubIFDs:                     "SubIFDs",
	TagType_InkSet:                      "InkSet",
	TagType_InkNames:                    "InkNames",
	TagType_NumberOfInks:                "NumberOfInks",
	TagType_DotRange:                    "DotRange",
	TagType_TargetPrinter:               "TargetPrinter",
	TagType_ExtraSamples:                "ExtraSamples",
	TagType_SampleFormat:                "SampleFormat",
	TagType_SMinSampleValue:             "SMinSampleValue",
	TagType_SMaxSampleValue:             "SMaxSampleValue",
	TagType_TransferRange:               "TransferRange",
	TagType_ClipPath:                    "ClipPath",
	TagType_XClipPathUnits:              "XClipPathUnits",
	TagType_YClipPathUnits:              "YClipPathUnits",
	TagType_Indexed:                     "Indexed",
	TagType_JPEGTables:                  "JPEGTables",
	TagType_OPIProxy:                    "OPIProxy",
	TagType_GlobalParametersIFD:         "GlobalParametersIFD",
	TagType_ProfileType:                 "ProfileType",
	TagType_FaxProfile:                  "FaxProfile",
	TagType_CodingMethods:               "CodingMethods",
	TagType_VersionYear:                 "VersionYear",
	TagType_ModeNumber:                  "ModeNumber",
	TagType_Decode:                      "Decode",
	TagType_DefaultImageColor:           "DefaultImageColor",
	TagType_JPEGProc:                    "JPEGProc",
	TagType_JPEGInterchangeFormat:       "JPEGInterchangeFormat",
	TagType_JPEGInterchangeFormatLength: "JPEGInterchangeFormatLength",
	TagType_JPEGRestartInterval:         "JPEGRestartInterval",
	TagType_JPEGLosslessPredictors:      "JPEGLosslessPredictors",
	TagType_JPEGPointTransforms:         "JPEGPointTransforms",
	TagType_JPEGQTables:                 "JPEGQTables",
	TagType_JPEGDCTables:                "JPEGDCTables",
	TagType_JPEGACTables:                "JPEGACTables",
	TagType_YCbCrCoefficients:           "YCbCrCoefficients",
	TagType_YCbCrSubSampling:            "YCbCrSubSampling",
	TagType_YCbCrPositioning:            "YCbCrPositioning",
	TagType_ReferenceBlackWhite:         "ReferenceBlackWhite",
	TagType_StripRowCounts:              "StripRowCounts",
	TagType_XMP:                         "XMP",
	TagType_ImageID:                     "ImageID",
	TagType_Copyright:                   "Copyright",
	TagType_ImageLayer:                  "ImageLayer",
	TagType_WangAnnotation:              "WangAnnotation",
	TagType_MDFileTag:                   "MDFileTag",
	TagType_MDScalePixel:                "MDScalePixel",
	TagType_MDColorTable:                "MDColorTable",
	TagType_MDLabName:                   "MDLabName",
	TagType_MDSampleInfo:                "MDSampleInfo",
	TagType_MDPrepDate:                  "MDPrepDate",
	TagType_MDPrepTime:                  "MDPrepTime",
	TagType_MDFileUnits:                 "MDFileUnits",
	TagType_ModelPixelScaleTag:          "ModelPixelScaleTag",
	TagType_IPTC:                        "IPTC",
	TagType_INGRPacketDataTag:           "INGRPacketDataTag",
	TagType_INGRFlagRegisters:           "INGRFlagRegisters",
	TagType_IrasBTransformationMatrix:   "IrasBTransformationMatrix",
	TagType_ModelTiepointTag:            "ModelTiepointTag",
	TagType_ModelTransformationTag:      "ModelTransformationTag",
	TagType_Photoshop:                   "Photoshop",
	TagType_ExifIFD:                     "ExifIFD",
	TagType_ICCProfile:                  "ICCProfile",
	TagType_GeoKeyDirectoryTag:          "GeoKeyDirectoryTag",
	TagType_GeoDoubleParamsTag:          "GeoDoubleParamsTag",
	TagType_GeoAsciiParamsTag:           "GeoAsciiParamsTag",
	TagType_GPSIFD:                      "GPSIFD",
	TagType_HylaFAXFaxRecvParams:        "HylaFAXFaxRecvParams",
	TagType_HylaFAXFaxSubAddress:        "HylaFAXFaxSubAddress",
	TagType_HylaFAXFaxRecvTime:          "HylaFAXFaxRecvTime",
	TagType_ImageSourceData:             "ImageSourceData",
	TagType_InteroperabilityIFD:         "InteroperabilityIFD",
	TagType_GDALMetadata:                "GDALMetadata",
	TagType_GDALNoData:                  "GDALNoData",
	TagType_OceScanjobDescription:       "OceScanjobDescription",
	TagType_OceApplicationSelector:      "OceApplicationSelector",
	TagType_OceIdentificationNumber:     "OceIdentificationNumber",
	TagType_OceImageLogicCharacteristic: "OceImageLogicCharacteristics",
	TagType_DNGVersion:                  "DNGVersion",
	TagType_DNGBackwardVersion:          "DNGBackwardVersion",
	TagType_UniqueCameraModel:           "UniqueCameraModel",
	TagType_LocalizedCameraModel:        "LocalizedCameraModel",
	TagType_CFAPlaneColor:               "CFAPlaneColor",
	TagType_CFALayout:                   "CFALayout",
	TagType_LinearizationTable:          "LinearizationTable",
	TagType_BlackLevelRepeatDim:         "BlackLevelRepeatDim",
	TagType_BlackLevel:                  "BlackLevel",
	TagType_BlackLevelDeltaH:            "BlackLevelDeltaH",
	TagType_BlackLevelDeltaV:            "BlackLevelDeltaV",
	TagType_WhiteLevel:                  "WhiteLevel",
	TagType_DefaultScale:                "DefaultScale",
	TagType_DefaultCropOrigin:           "DefaultCropOrigin",
	TagType_DefaultCropSize:             "DefaultCropSize",
	TagType_ColorMatrix1:                "ColorMatrix1",
	TagType_ColorMatrix2:                "ColorMatrix2",
	TagType_CameraCalibration1:          "CameraCalibration1",
	TagType_CameraCalibration2:          "CameraCalibration2",
	TagType_ReductionMatrix1:            "ReductionMatrix1",
	TagType_ReductionMatrix2:            "ReductionMatrix2",
	TagType_AnalogBalance:               "AnalogBalance",
	TagType_AsShotNeutral:               "AsShotNeutral",
	TagType_AsShotWhiteXY:               "AsShotWhiteXY",
	TagType_BaselineExposure:            "BaselineExposure",
	TagType_BaselineNoise:               "BaselineNoise",
	TagType_BaselineSharpness:           "BaselineSharpness",
	TagType_BayerGreenSplit:             "BayerGreenSplit",
	TagType_LinearResponseLimit:         "LinearResponseLimit",
	TagType_CameraSerialNumber:          "CameraSerialNumber",
	TagType_LensInfo:                    "LensInfo",
	TagType_ChromaBlurRadius:            "ChromaBlurRadius",
	TagType_AntiAliasStrength:           "AntiAliasStrength",
	TagType_DNGPrivateData:              "DNGPrivateData",
	TagType_MakerNoteSafety:             "MakerNoteSafety",
	TagType_CalibrationIlluminant1:      "CalibrationIlluminant1",
	TagType_CalibrationIlluminant2:      "CalibrationIlluminant2",
	TagType_BestQualityScale:            "BestQualityScale",
	TagType_AliasLayerMetadata:          "AliasLayerMetadata",
}

// Name returns the tag's spec name, or "unknown" for private tags we
// don't carry in the table.
func (t TagType) Name() string {
	if name, ok := TagNames[t]; ok {
		return name
	}
	return "unknown"
}

// Compression values
const (
	Compression_Uncompressed uint64 = 1
	Compression_CCITT_ID     uint64 = 2
	Compression_Group3Fax    uint64 = 3
	Compression_Group4Fax    uint64 = 4
	Compression_LZW          uint64 = 5
	Compression_JPEG         uint64 = 6
	Compression_PackBits     uint64 = 0x8005
)

// ExtraSamples values
const (
	ExtraSamples_Unspecified  uint64 = 0
	ExtraSamples_Associated   uint64 = 1
	ExtraSamples_Unassociated uint64 = 2
)

// FillOrder values
const (
	FillOrder_LeftToRight uint64 = 1
	FillOrder_RightToLeft uint64 = 2
)

// Orientation values name the transformations needed to display the
// image normally.
const (
	Orientation_Normal                      uint64 = 1
	Orientation_LeftRight                   uint64 = 2
	Orientation_LeftRightTopBottom          uint64 = 3
	Orientation_TopBottom                   uint64 = 4
	Orientation_Transpose                   uint64 = 5
	Orientation_TransposeLeftRight          uint64 = 6
	Orientation_TransposeLeftRightTopBottom uint64 = 7
	Orientation_TransposeTopBottom          uint64 = 8
)

// PhotometricInterpretation values
const (
	Photometric_WhiteIsZero      uint64 = 0
	Photometric_BlackIsZero      uint64 = 1
	Photometric_RGB              uint64 = 2
	Photometric_Palette          uint64 = 3
	Photometric_TransparencyMask uint64 = 4
)

// PlanarConfiguration values
const (
	PlanarConfiguration_Chunky uint64 = 1
	PlanarConfiguration_Planar uint64 = 2
)

// ResolutionUnit values
const (
	ResolutionUnit_None       uint64 = 1
	ResolutionUnit_Inch       uint64 = 2
	ResolutionUnit_Centimeter uint64 = 3
)

// SubfileType values
const (
	SubfileType_FullResolution    uint64 = 1
	SubfileType_ReducedResolution uint64 = 2
	SubfileType_SinglePage        uint64 = 3
)

// Thresholding values
const (
	Thresholding_Nothing    uint64 = 1
	Thresholding_Ordered    uint64 = 2
	Thresholding_Randomized uint64 = 3
)

// TagValueNames maps enumerated tags to value-name tables, for the IFD
// pretty printer.
var TagValueNames = map[TagType]map[uint64]string{
	TagType_Compression: {
		Compression_Uncompressed: "uncompressed",
		Compression_CCITT_ID:     "CCITT_ID",
		Compression_Group3Fax:    "Group3Fax",
		Compression_Group4Fax:    "Group4Fax",
		Compression_LZW:          "LZW",
		Compression_JPEG:         "JPEG",
		Compression_PackBits:     "PackBits",
	},
	TagType_ExtraSamples: {
		ExtraSamples_Unspecified:  "Unspecified",
		ExtraSamples_Associated:   "Associated",
		ExtraSamples_Unassociated: "Unassociated",
	},
	TagType_FillOrder: {
		FillOrder_LeftToRight: "LeftToRight",
		FillOrder_RightToLeft: "RightToLeft",
	},
	TagType_Orientation: {
		Orientation_Normal:                      "normal",
		Orientation_LeftRight:                   "leftright",
		Orientation_LeftRightTopBottom:          "leftright_topbottom",
		Orientation_TopBottom:                   "topbottom",
		Orientation_Transpose:                   "transpose",
		Orientation_TransposeLeftRight:          "transpose_leftright",
		Orientation_TransposeLeftRightTopBottom: "transpose_leftright_topbottom",
		Orientation_TransposeTopBottom:          "transpose_topbottom",
	},
	TagType_PhotometricInterpretation: {
		Photometric_WhiteIsZero:      "WhiteIsZero",
		Photometric_BlackIsZero:      "BlackIsZero",
		Photometric_RGB:              "RGB",
		Photometric_Palette:          "Palette",
		Photometric_TransparencyMask: "TransparencyMask",
	},
	TagType_PlanarConfiguration: {
		PlanarConfiguration_Chunky: "Chunky",
		PlanarConfiguration_Planar: "Planar",
	},
	TagType_ResolutionUnit: {
		ResolutionUnit_None:       "NoUnit",
		ResolutionUnit_Inch:       "Inch",
		ResolutionUnit_Centimeter: "Centimeter",
	},
	TagType_SubfileType: {
		SubfileType_FullResolution:    "FullResolution",
		SubfileType_ReducedResolution: "ReducedResolution",
		SubfileType_SinglePage:        "SinglePage",
	},
	TagType_Thresholding: {
		Thresholding_Nothing:    "Nothing",
		Thresholding_Ordered:    "Ordered",
		Thresholding_Randomized: "Randomized",
	},
}
