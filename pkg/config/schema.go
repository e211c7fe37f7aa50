package config

// Schema is the JSON schema a resolved contract configuration must satisfy
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "bucket": {
            "type": "string",
            "minLength": 1,
            "description": "S3 bucket holding the contract"
        },
        "key": {
            "type": "string",
            "minLength": 1,
            "description": "Object key of the contract"
        },
        "region": {
            "type": "string",
            "minLength": 1
        },
        "endpoint": {
            "type": "string",
            "pattern": "^https?://"
        },
        "force_path_style": {
            "type": "boolean"
        }
    },
    "required": ["bucket", "key", "region"]
}`
