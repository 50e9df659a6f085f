package profile

// schemaJSON is the structural contract for profile documents. Ranges
// that depend on other fields (prototype indices) are checked at run
// time instead, where an out-of-range reference is a skip, not an error.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": ["object", "null"],
  "properties": {
    "resolution": {"type": "integer", "minimum": 1},
    "alphamap_resolution": {"type": "integer", "minimum": 1},
    "detail_resolution": {"type": "integer", "minimum": 1},
    "size_x": {"type": "number", "exclusiveMinimum": 0},
    "size_y": {"type": "number", "exclusiveMinimum": 0},
    "size_z": {"type": "number", "exclusiveMinimum": 0},
    "seed": {"type": "integer"},
    "base_height": {"type": "number"},
    "use_falloff": {"type": "boolean"},
    "falloff_curve": {"enum": ["linear", "smooth", "smoother", "power"]},
    "falloff_strength": {"type": "number", "minimum": 0},
    "geology": {"enum": ["none", "volcanic", "sedimentary", "granite", "karst", "canyon", "archipelago"]},
    "water_level": {"type": "number"},
    "noise_layers": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "enabled": {"type": "boolean"},
          "kind": {"enum": ["plain", "ridged", "billow"]},
          "amplitude": {"type": "number"},
          "frequency": {"type": "number", "minimum": 0},
          "octaves": {"type": "integer", "minimum": 0},
          "persistence": {"type": "number", "minimum": 0},
          "lacunarity": {"type": "number", "minimum": 0},
          "offset_x": {"type": "number"},
          "offset_y": {"type": "number"}
        }
      }
    },
    "texture_layers": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "texture": {"type": "string"},
          "min_height": {"type": "number"},
          "max_height": {"type": "number"},
          "min_slope": {"type": "number"},
          "max_slope": {"type": "number"},
          "noise_scale": {"type": "number", "minimum": 0},
          "noise_strength": {"type": "number", "minimum": 0, "maximum": 1},
          "weight": {"type": "number", "minimum": 0}
        }
      }
    },
    "tree_prototypes": {"type": "array", "items": {"type": "string"}},
    "detail_prototypes": {"type": "array", "items": {"type": "string"}},
    "trees": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "prototype_index": {"type": "integer", "minimum": 0},
          "density": {"type": "number", "minimum": 0},
          "min_height": {"type": "number"},
          "max_height": {"type": "number"},
          "min_slope": {"type": "number"},
          "max_slope": {"type": "number"},
          "scale_min": {"type": "number", "minimum": 0},
          "scale_max": {"type": "number", "minimum": 0},
          "random_yaw": {"type": "number", "minimum": 0, "maximum": 360}
        }
      }
    },
    "details": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "prototype_index": {"type": "integer", "minimum": 0},
          "density": {"type": "number", "minimum": 0, "maximum": 1},
          "noise_spread": {"type": "number", "minimum": 0},
          "min_height": {"type": "number"},
          "max_height": {"type": "number"},
          "min_slope": {"type": "number"},
          "max_slope": {"type": "number"}
        }
      }
    },
    "props": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "prefabs": {"type": "array", "items": {"type": "string"}},
          "seed_offset": {"type": "integer"},
          "density": {"type": "number", "minimum": 0},
          "min_height": {"type": "number"},
          "max_height": {"type": "number"},
          "min_slope": {"type": "number"},
          "max_slope": {"type": "number"},
          "scale_min": {"type": "number", "minimum": 0},
          "scale_max": {"type": "number", "minimum": 0},
          "random_yaw": {"type": "number", "minimum": 0, "maximum": 360},
          "align_to_normal": {"type": "boolean"}
        }
      }
    }
  }
}`
